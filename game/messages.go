package game

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sheikhrachel/go-gol-variants/rules"
)

// Console messages double as catalog keys; English needs no entries.
const (
	msgAskRandom      = "Start with a random board? (y/N)"
	msgAskRandomRetry = "Please type 'y' for yes or ENTER/'n' for no:"
	msgRandomMode     = "Random mode selected."
	msgManualMode     = "Manual mode selected."
	msgPatternMode    = "Pattern %s selected."
	msgAskCells       = "Enter the coordinates of live cells (row column). Enter -1 -1 to finish:"
	msgOutOfBounds    = "Coordinate out of bounds! Try again."
	msgAskPair        = "Please enter two whole numbers: row column."
	msgChooseRule     = "Choose the rule set:"
	msgRuleItem       = "%d. %s"
	msgAskRule        = "Enter the number of the desired rule:"
	msgInvalidRule    = "Invalid number! Try again."
	msgNotNumber      = "Please enter a valid number."
	msgSelectedRule   = "Selected rules: %s"
	msgInitialBoard   = "Initial board:"
	msgNoLiveCells    = "No live cells on the board. Simulation finished."
	msgAskGenerations = "Enter the maximum number of generations (greater than 0):"
	msgGenerationsLow = "Error: the number must be greater than zero."
	msgGenerationsNaN = "Error: please enter whole numbers only."
	msgPressEnter     = "Press ENTER to start the simulation..."
	msgGeneration     = "Generation %d - Live cells: %d"
	msgAllDead        = "All cells died. Simulation finished."
	msgLimitReached   = "Reached the generation limit (%d)."
	msgInterrupted    = "Simulation interrupted."
	msgSummary        = "Generations: %d | Peak population: %d | Average population: %.1f | Runtime: %.1fs"
)

var supportedLanguages = []language.Tag{
	language.English,
	language.BrazilianPortuguese,
}

var languageMatcher = language.NewMatcher(supportedLanguages)

func init() {
	pt := language.BrazilianPortuguese
	for key, msg := range map[string]string{
		msgAskRandom:      "Deseja iniciar de forma aleatória? (s/N)",
		msgAskRandomRetry: "Por favor, digite 's' para sim ou ENTER/'n' para não:",
		msgRandomMode:     "Modo aleatório selecionado.",
		msgManualMode:     "Modo manual selecionado.",
		msgPatternMode:    "Padrão %s selecionado.",
		msgAskCells:       "Digite as coordenadas das células vivas (linha coluna). Digite -1 -1 para finalizar:",
		msgOutOfBounds:    "Coordenada fora dos limites! Tente novamente.",
		msgAskPair:        "Por favor, digite dois números inteiros: linha coluna.",
		msgChooseRule:     "Escolha o conjunto de regras:",
		msgAskRule:        "Digite o número da regra desejada:",
		msgInvalidRule:    "Número inválido! Tente novamente.",
		msgNotNumber:      "Por favor, digite um número válido.",
		msgSelectedRule:   "Regras selecionadas: %s",
		msgInitialBoard:   "Tabuleiro inicial:",
		msgNoLiveCells:    "Nenhuma célula viva no tabuleiro. Simulação encerrada.",
		msgAskGenerations: "Digite o número máximo de gerações (maior que 0):",
		msgGenerationsLow: "Erro: O número deve ser maior que zero.",
		msgGenerationsNaN: "Erro: Por favor, digite apenas números inteiros.",
		msgPressEnter:     "Pressione ENTER para iniciar a simulação...",
		msgGeneration:     "Geração %d - Células vivas: %d",
		msgAllDead:        "Todas as células morreram. Simulação encerrada.",
		msgLimitReached:   "Limite de gerações atingido (%d).",
		msgInterrupted:    "Simulação interrompida.",
		msgSummary:        "Gerações: %d | População máxima: %d | População média: %.1f | Duração: %.1fs",

		rules.Conway.Name():            "Conway Original",
		rules.StableLife.Name():        "Vida Estável",
		rules.HighLife.Name():          "High Life",
		rules.Conway.Description():     "Regras:\n- Células vivas com 2 ou 3 vizinhos sobrevivem\n- Células mortas com exatamente 3 vizinhos revivem\n- Demais células morrem ou permanecem mortas.",
		rules.StableLife.Description(): "Regras:\n- Vivas: sobrevivem com 2 a 4 vizinhos\n- Mortas: revivem com 3 ou 5 vizinhos\n- Demais células morrem ou permanecem mortas.",
		rules.HighLife.Description():   "Regras:\n- Vivas: sobrevivem com 2 ou 3 vizinhos\n- Mortas: revivem com 3 ou 6 vizinhos\n- Demais células morrem ou permanecem mortas.",
	} {
		_ = message.SetString(pt, key, msg)
	}
}

// MatchLanguage picks the closest supported language for a BCP 47 tag such as
// "pt-BR". Unparseable or unsupported tags fall back to English.
func MatchLanguage(tag string) language.Tag {
	parsed, err := language.Parse(tag)
	if err != nil {
		return language.English
	}
	_, idx, _ := languageMatcher.Match(parsed)
	return supportedLanguages[idx]
}

func newPrinter(tag string) *message.Printer {
	return message.NewPrinter(MatchLanguage(tag))
}
