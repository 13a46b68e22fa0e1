package model

// ThemeMode 공개 화면 테마 모드
type ThemeMode string

const (
	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"
	ThemeSystem ThemeMode = "system"
)

func (m ThemeMode) IsValid() bool {
	switch m {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

// ColorTheme 컬러 프리셋 이름
type ColorTheme string

const (
	ColorThemeOcean    ColorTheme = "ocean"
	ColorThemeSunset   ColorTheme = "sunset"
	ColorThemeForest   ColorTheme = "forest"
	ColorThemeLavender ColorTheme = "lavender"
	ColorThemeCustom   ColorTheme = "custom"
)

func (c ColorTheme) IsValid() bool {
	switch c {
	case ColorThemeOcean, ColorThemeSunset, ColorThemeForest, ColorThemeLavender, ColorThemeCustom:
		return true
	}
	return false
}

type CustomColors struct {
	Primary string `json:"primary"`
	Accent  string `json:"accent"`
	Bg      string `json:"bg"`
}

// ThemePreference 기기에 저장되는 테마 설정 (버전 관리 없음)
type ThemePreference struct {
	Mode         ThemeMode    `json:"mode"`
	ColorTheme   ColorTheme   `json:"colorTheme"`
	CustomColors CustomColors `json:"customColors"`
}

// DefaultThemePreference 최초 접속 시 기본값
func DefaultThemePreference() ThemePreference {
	return ThemePreference{
		Mode:       ThemeSystem,
		ColorTheme: ColorThemeOcean,
		CustomColors: CustomColors{
			Primary: "#97c2ec",
			Accent:  "#6fa8de",
			Bg:      "#f5f3ef",
		},
	}
}

// ColorPreset 프리셋 팔레트 한 벌
type ColorPreset struct {
	Name    string `json:"name"`
	Emoji   string `json:"emoji"`
	Primary string `json:"primary"`
	Accent  string `json:"accent"`
}

// ColorPresets 선택 가능한 컬러 프리셋 (custom 제외)
var ColorPresets = map[ColorTheme]ColorPreset{
	ColorThemeOcean:    {Name: "오션 블루", Emoji: "🌊", Primary: "#97c2ec", Accent: "#6fa8de"},
	ColorThemeSunset:   {Name: "선셋 코랄", Emoji: "🌅", Primary: "#f4a886", Accent: "#e8856b"},
	ColorThemeForest:   {Name: "포레스트 그린", Emoji: "🌿", Primary: "#8bc6a5", Accent: "#6aab8a"},
	ColorThemeLavender: {Name: "라벤더 퍼플", Emoji: "💜", Primary: "#b8a9d4", Accent: "#9b88bf"},
}
