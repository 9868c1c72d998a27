package domain

// QuestionID identifica una pregunta del cuestionario ("Q1".."Q26").
type QuestionID string

// OptionKey identifica la opcion elegida dentro de una pregunta.
type OptionKey string

// AnswerSet mapea cada pregunta respondida a la opcion elegida.
type AnswerSet map[QuestionID]OptionKey

// LoveStyle es el estilo de amor dominante (Lee).
type LoveStyle string

const (
	LoveStylePassion    LoveStyle = "PASSION"
	LoveStyleGame       LoveStyle = "GAME"
	LoveStyleFriendship LoveStyle = "FRIENDSHIP"
	LoveStylePragmatic  LoveStyle = "PRAGMATIC"
	LoveStyleMania      LoveStyle = "MANIA"
	LoveStyleAgape      LoveStyle = "AGAPE"
)

// LoveStyles lista los estilos en orden de prioridad para desempates.
var LoveStyles = []LoveStyle{
	LoveStylePassion,
	LoveStyleGame,
	LoveStyleFriendship,
	LoveStylePragmatic,
	LoveStyleMania,
	LoveStyleAgape,
}

// Attachment es el tipo de apego adulto.
type Attachment string

const (
	AttachmentSecure   Attachment = "SECURE"
	AttachmentAvoidant Attachment = "AVOIDANT"
	AttachmentAnxious  Attachment = "ANXIOUS"
	AttachmentFearful  Attachment = "FEARFUL"
)

var Attachments = []Attachment{
	AttachmentSecure,
	AttachmentAvoidant,
	AttachmentAnxious,
	AttachmentFearful,
}

// LoveLanguage es el lenguaje de expresion afectiva.
type LoveLanguage string

const (
	LoveLanguageWords        LoveLanguage = "WORDS"
	LoveLanguageQualityTime  LoveLanguage = "QUALITY_TIME"
	LoveLanguageActs         LoveLanguage = "ACTS"
	LoveLanguagePhysicalHigh LoveLanguage = "PHYSICAL_HIGH"
	LoveLanguagePhysicalLow  LoveLanguage = "PHYSICAL_LOW"
)

var LoveLanguages = []LoveLanguage{
	LoveLanguageWords,
	LoveLanguageQualityTime,
	LoveLanguageActs,
	LoveLanguagePhysicalHigh,
	LoveLanguagePhysicalLow,
}

// TriangularDimension es uno de los tres componentes del triangulo del amor.
type TriangularDimension string

const (
	DimensionIntimacy   TriangularDimension = "INTIMACY"
	DimensionPassion    TriangularDimension = "PASSION"
	DimensionCommitment TriangularDimension = "COMMITMENT"
)

var TriangularDimensions = []TriangularDimension{
	DimensionIntimacy,
	DimensionPassion,
	DimensionCommitment,
}

// ConflictCategory es una categoria del vector de conflicto. HEALTHY acumula
// puntaje pero nunca gana la clasificacion.
type ConflictCategory string

const (
	ConflictHealthy       ConflictCategory = "HEALTHY"
	ConflictCriticism     ConflictCategory = "CRITICISM"
	ConflictDefensiveness ConflictCategory = "DEFENSIVENESS"
	ConflictStonewalling  ConflictCategory = "STONEWALLING"
	ConflictContempt      ConflictCategory = "CONTEMPT"
)

var ConflictCategories = []ConflictCategory{
	ConflictHealthy,
	ConflictCriticism,
	ConflictDefensiveness,
	ConflictStonewalling,
	ConflictContempt,
}

// TriangularType es uno de los siete tipos de relacion del modelo triangular.
type TriangularType string

const (
	TriangularLiking       TriangularType = "LIKING"
	TriangularInfatuation  TriangularType = "INFATUATION"
	TriangularEmpty        TriangularType = "EMPTY"
	TriangularRomantic     TriangularType = "ROMANTIC"
	TriangularCompanionate TriangularType = "COMPANIONATE"
	TriangularFoolish      TriangularType = "FOOLISH"
	TriangularConsummate   TriangularType = "CONSUMMATE"
)

var TriangularTypes = []TriangularType{
	TriangularLiking,
	TriangularInfatuation,
	TriangularEmpty,
	TriangularRomantic,
	TriangularCompanionate,
	TriangularFoolish,
	TriangularConsummate,
}

// ConflictType es el patron de conflicto clasificado; NONE significa saludable.
type ConflictType string

const (
	ConflictTypeNone          ConflictType = "NONE"
	ConflictTypeCriticism     ConflictType = "CRITICISM"
	ConflictTypeDefensiveness ConflictType = "DEFENSIVENESS"
	ConflictTypeStonewalling  ConflictType = "STONEWALLING"
	ConflictTypeContempt      ConflictType = "CONTEMPT"
)

var ConflictTypes = []ConflictType{
	ConflictTypeNone,
	ConflictTypeCriticism,
	ConflictTypeDefensiveness,
	ConflictTypeStonewalling,
	ConflictTypeContempt,
}

// Archetype es la etiqueta secundaria (animal) derivada de estilo x apego.
type Archetype string

const (
	ArchetypeDolphin         Archetype = "dolphin"
	ArchetypeCat             Archetype = "cat"
	ArchetypePeacock         Archetype = "peacock"
	ArchetypeHedgehog        Archetype = "hedgehog"
	ArchetypeOtter           Archetype = "otter"
	ArchetypeFox             Archetype = "fox"
	ArchetypeRaccoon         Archetype = "raccoon"
	ArchetypeOctopus         Archetype = "octopus"
	ArchetypeGoldenRetriever Archetype = "golden_retriever"
	ArchetypeTortoise        Archetype = "tortoise"
	ArchetypePenguin         Archetype = "penguin"
	ArchetypeFerret          Archetype = "ferret"
	ArchetypeRhino           Archetype = "rhino"
	ArchetypeOwl             Archetype = "owl"
	ArchetypeBeaver          Archetype = "beaver"
	ArchetypeDeer            Archetype = "deer"
	ArchetypeWolf            Archetype = "wolf"
	ArchetypeHorse           Archetype = "horse"
	ArchetypeSwan            Archetype = "swan"
	ArchetypeLynx            Archetype = "lynx"
	ArchetypeElephant        Archetype = "elephant"
	ArchetypeSloth           Archetype = "sloth"
	ArchetypeHamster         Archetype = "hamster"
	ArchetypeSnowHare        Archetype = "snow_hare"
)
