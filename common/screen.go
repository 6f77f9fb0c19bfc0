package common

const (
	ScreenWidth  = 1366
	ScreenHeight = 768
	ScreenTitle  = "Samurai"
)
