package i18n

// Error codes must match the codes defined in errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeDiceNoRandomSource        = "DICE_NO_RANDOM_SOURCE"
	CodeDiceInvalidFaces          = "DICE_INVALID_FACES"
	CodeDiceInvalidDiceCount      = "DICE_INVALID_DICE_COUNT"
	CodeDiceInvalidAdditionalDice = "DICE_INVALID_ADDITIONAL_DICE"
	CodeRandomInvalidBound        = "RANDOM_INVALID_BOUND"
	CodeRandomSourceFailure       = "RANDOM_SOURCE_FAILURE"
	CodeRandomSeedFailure         = "RANDOM_SEED_FAILURE"
)

var enUSCatalog = &Catalog{
	locale: "en-US",
	messages: map[Code]string{
		// Construction errors
		CodeDiceNoRandomSource: "A random source provider is required to build a roller",

		// Configuration errors
		CodeDiceInvalidFaces:          "Dice must have at least one face, got {{.Faces}}",
		CodeDiceInvalidDiceCount:      "Dice count cannot be negative, got {{.Dice}}",
		CodeDiceInvalidAdditionalDice: "Additional dice count cannot be negative, got {{.AdditionalDice}}",
		CodeRandomInvalidBound:        "Random bound must be positive, got {{.Bound}}",

		// Random source errors
		CodeRandomSourceFailure: "The random source failed during resolution",
		CodeRandomSeedFailure:   "Seed generation failed",
	},
}
