package domain

// Vectores de puntaje: se inicializan en cero para cada etiqueta y solo el
// agregador los modifica.
type (
	LoveStyleScores    map[LoveStyle]float64
	AttachmentScores   map[Attachment]float64
	LoveLanguageScores map[LoveLanguage]float64
	ConflictVector     map[ConflictCategory]float64
)

// TriangularVector acumula intimidad, pasion y compromiso.
type TriangularVector struct {
	Intimacy   float64 `json:"intimacy"`
	Passion    float64 `json:"passion"`
	Commitment float64 `json:"commitment"`
}

// ScoreVectors es la salida cruda del agregador, una por taxonomia.
type ScoreVectors struct {
	Style      LoveStyleScores    `json:"style"`
	Attachment AttachmentScores   `json:"attachment"`
	Language   LoveLanguageScores `json:"language"`
	Triangular TriangularVector   `json:"triangular"`
	Conflict   ConflictVector     `json:"conflict"`
}

// PersonalProfile es el resultado de un cuestionario completo. Inmutable una vez creado.
type PersonalProfile struct {
	PrimaryLoveStyle   LoveStyle          `json:"primary_love_style"`
	PrimaryAttachment  Attachment         `json:"primary_attachment"`
	Archetype          Archetype          `json:"archetype"`
	LoveStyleScores    LoveStyleScores    `json:"love_style_scores"`
	AttachmentScores   AttachmentScores   `json:"attachment_scores"`
	LoveLanguageScores LoveLanguageScores `json:"love_language_scores"`
	TriangularVector   TriangularVector   `json:"triangular_vector"`
	ConflictVector     ConflictVector     `json:"conflict_vector"`
	TriangularType     TriangularType     `json:"triangular_type"`
	ConflictType       ConflictType       `json:"conflict_type"`
}

// Escala Likert de las preguntas de intercambio.
const (
	ExchangeScaleMin      = 1
	ExchangeScaleMax      = 5
	ExchangeScaleMidpoint = 3
)

// ExchangeAnswers son las respuestas 1-5 de inversion, equidad y satisfaccion.
type ExchangeAnswers struct {
	Investment   int `json:"investment"`
	Equity       int `json:"equity"`
	Satisfaction int `json:"satisfaction"`
}

// NeutralExchange devuelve el triple por defecto (punto medio de la escala).
func NeutralExchange() ExchangeAnswers {
	return ExchangeAnswers{
		Investment:   ExchangeScaleMidpoint,
		Equity:       ExchangeScaleMidpoint,
		Satisfaction: ExchangeScaleMidpoint,
	}
}

// FullProfile agrega las respuestas de intercambio al perfil personal.
type FullProfile struct {
	PersonalProfile
	Exchange ExchangeAnswers `json:"exchange"`
}
