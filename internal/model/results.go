package model

type Profile struct {
	User               *User
	WalkCapMills       int64
	WalkRemainingMills int64
}

type TapResult struct {
	EarnedMills  int64
	BalanceMills int64
	Energy       int
	EnergyMax    int
}

type StepsResult struct {
	EarnedMills  int64
	BalanceMills int64
	TotalSteps   int64
	CapReached   bool
}

type UpgradeResult struct {
	BalanceMills      int64
	WalkLevel         int
	WalkRate          int64
	EnergyRegenPerSec float64
}
