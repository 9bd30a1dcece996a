package analysis

/*
========================
 Listas de palabras clave
========================
*/

// Todas las listas estan en minusculas y se comparan como subcadenas
// contra el transcript en minusculas ("loved" cuenta como "love").

var (
	EnthusiasmMarkers = []string{"love", "obsessed", "fascinating", "amazing", "incredible", "awesome", "passionate", "exciting"}
	DetailMarkers     = []string{"specific", "exactly", "precisely", "particular", "actually", "technically"}
	StoryMarkers      = []string{"remember when", "this one time", "story", "happened", "experience"}
)

var (
	OpennessWords          = []string{"curious", "creative", "imagine", "explore", "discover", "new", "different", "unique"}
	ConscientiousnessWords = []string{"careful", "organized", "detail", "plan", "practice", "learn", "study", "research"}
	ExtraversionWords      = []string{"people", "friends", "community", "share", "together", "social", "group", "meet"}
	AgreeablenessWords     = []string{"help", "care", "kind", "support", "understand", "appreciate", "grateful", "love"}
	NeuroticismWords       = []string{"worry", "stress", "anxious", "nervous", "afraid", "scared"}
)

var (
	StorytellingWords = []string{"story", "tell", "narrative", "remember", "once", "happened"}
	BuildingWords     = []string{"build", "create", "make", "craft", "design", "construct"}
	ExploringWords    = []string{"discover", "explore", "wonder", "curious", "question", "find"}
	ConnectingWords   = []string{"share", "together", "community", "friends", "people", "connect"}
	AnalyzingWords    = []string{"analyze", "think", "consider", "understand", "research", "study"}
)

// StopWords se excluyen de los candidatos a tag.
var StopWords = []string{
	"the", "a", "an", "and", "or", "but", "is", "are", "was", "were",
	"have", "has", "had", "do", "does", "did", "i", "you", "we", "they",
	"it", "this", "that", "really", "just", "very", "about", "like",
	"when", "what", "how", "why", "where", "who",
}

// ExperienceTriggers activan el hook de "experiencia favorita".
var ExperienceTriggers = []string{"remember when", "this one time", "experience"}

// Relleno de tags cuando el transcript no da suficientes candidatos (ademas del nicho).
const (
	FallbackTagEnthusiast = "Enthusiast"
	FallbackTagDeepDiver  = "Deep Diver"
)
