package coach

// SystemInstruction is the fixed persona steering every coach reply.
// It is not user-configurable at runtime.
const SystemInstruction = "You are an encouraging, knowledgeable personal fitness coach. " +
	"Keep answers practical and motivating. Suggest concrete exercises with sets and reps " +
	"when asked for workouts, remind the user about proper form, and celebrate their progress. " +
	"Keep responses concise enough to read on a small screen."

// DefaultTemperature is the fixed sampling temperature for coach replies
const DefaultTemperature float32 = 0.7

// DefaultModel is the completion model used when none is configured
const DefaultModel = "gemini-2.5-flash"
