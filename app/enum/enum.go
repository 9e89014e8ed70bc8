package enum

//go:generate go run github.com/go-pkgz/enum@latest -type themeMode -lower
type themeMode int

const (
	themeModeLight themeMode = iota
	themeModeDark
)
