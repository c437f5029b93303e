// Package i18n holds the translated UI strings.
package i18n

import "github.com/vovakirdan/rocket-kid/internal/config"

// Strings is one complete translation.
type Strings struct {
	Title             string
	HighScore         string
	Score             string
	Health            string
	Launch            string
	Ready             string
	Go                string
	GameOver          string
	Restart           string
	MainMenu          string
	Settings          string
	Language          string
	Volume            string
	Sounds            string
	CountdownSound    string
	TurbineSound      string
	JetSound          string
	AutoRestart       string
	ObstacleCollision string
	Shooting          string
	Play              string
	Save              string
	Back              string

	Scores   string
	Quit     string
	Altitude string
	Space    string
	Speed    string
	On       string
	Off      string
	NoScores string
	TooSmall string
}

var english = Strings{
	Title:             "Rocket Kid Adventure",
	HighScore:         "High Score",
	Score:             "Score",
	Health:            "Health",
	Launch:            "Hold UP to Launch!",
	Ready:             "Get Ready!",
	Go:                "GO!",
	GameOver:          "Game Over!",
	Restart:           "Restart Game",
	MainMenu:          "Main Menu",
	Settings:          "Settings",
	Language:          "Language",
	Volume:            "Volume",
	Sounds:            "Sound Effects",
	CountdownSound:    "Countdown Sound",
	TurbineSound:      "Turbine Sound",
	JetSound:          "Jet Sound",
	AutoRestart:       "Auto Restart",
	ObstacleCollision: "Obstacle Collision",
	Shooting:          "Shooting Enabled",
	Play:              "Play",
	Save:              "Save",
	Back:              "Back",

	Scores:   "High Scores",
	Quit:     "Quit",
	Altitude: "ALT",
	Space:    "SPACE",
	Speed:    "Speed",
	On:       "On",
	Off:      "Off",
	NoScores: "No flights yet",
	TooSmall: "Enlarge the terminal",
}

var portuguese = Strings{
	Title:             "Aventura do Foguete Kid",
	HighScore:         "Recorde",
	Score:             "Pontos",
	Health:            "Saúde",
	Launch:            "Segure CIMA para Lançar!",
	Ready:             "Preparar!",
	Go:                "VAI!",
	GameOver:          "Fim de Jogo!",
	Restart:           "Reiniciar",
	MainMenu:          "Menu Principal",
	Settings:          "Configurações",
	Language:          "Idioma",
	Volume:            "Volume",
	Sounds:            "Efeitos Sonoros",
	CountdownSound:    "Som de Contagem",
	TurbineSound:      "Som de Turbina",
	JetSound:          "Som de Jato",
	AutoRestart:       "Reinício Automático",
	ObstacleCollision: "Colisão de Obstáculos",
	Shooting:          "Tiros Habilitados",
	Play:              "Jogar",
	Save:              "Salvar",
	Back:              "Voltar",

	Scores:   "Recordes",
	Quit:     "Sair",
	Altitude: "ALT",
	Space:    "ESPAÇO",
	Speed:    "Velocidade",
	On:       "Sim",
	Off:      "Não",
	NoScores: "Nenhum voo ainda",
	TooSmall: "Aumente o terminal",
}

// For returns the translation for lang, falling back to English.
func For(lang config.Language) Strings {
	if lang == config.LanguagePT {
		return portuguese
	}
	return english
}

// LanguageName is how a language names itself in the settings screen.
func LanguageName(lang config.Language) string {
	switch lang {
	case config.LanguagePT:
		return "Português"
	default:
		return "English"
	}
}

// Toggle renders a boolean setting.
func (s Strings) Toggle(on bool) string {
	if on {
		return s.On
	}
	return s.Off
}
