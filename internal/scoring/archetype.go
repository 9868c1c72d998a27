package scoring

import "love-match/internal/domain"

// DefaultArchetype is returned for any (style, attachment) pair missing from the matrix.
const DefaultArchetype = domain.ArchetypeDolphin

var archetypeMatrix = map[domain.LoveStyle]map[domain.Attachment]domain.Archetype{
	domain.LoveStylePassion: {
		domain.AttachmentSecure:   domain.ArchetypeDolphin,
		domain.AttachmentAvoidant: domain.ArchetypeCat,
		domain.AttachmentAnxious:  domain.ArchetypePeacock,
		domain.AttachmentFearful:  domain.ArchetypeHedgehog,
	},
	domain.LoveStyleGame: {
		domain.AttachmentSecure:   domain.ArchetypeOtter,
		domain.AttachmentAvoidant: domain.ArchetypeFox,
		domain.AttachmentAnxious:  domain.ArchetypeRaccoon,
		domain.AttachmentFearful:  domain.ArchetypeOctopus,
	},
	domain.LoveStyleFriendship: {
		domain.AttachmentSecure:   domain.ArchetypeGoldenRetriever,
		domain.AttachmentAvoidant: domain.ArchetypeTortoise,
		domain.AttachmentAnxious:  domain.ArchetypePenguin,
		domain.AttachmentFearful:  domain.ArchetypeFerret,
	},
	domain.LoveStylePragmatic: {
		domain.AttachmentSecure:   domain.ArchetypeRhino,
		domain.AttachmentAvoidant: domain.ArchetypeOwl,
		domain.AttachmentAnxious:  domain.ArchetypeBeaver,
		domain.AttachmentFearful:  domain.ArchetypeDeer,
	},
	domain.LoveStyleMania: {
		domain.AttachmentSecure:   domain.ArchetypeWolf,
		domain.AttachmentAvoidant: domain.ArchetypeHorse,
		domain.AttachmentAnxious:  domain.ArchetypeSwan,
		domain.AttachmentFearful:  domain.ArchetypeLynx,
	},
	domain.LoveStyleAgape: {
		domain.AttachmentSecure:   domain.ArchetypeElephant,
		domain.AttachmentAvoidant: domain.ArchetypeSloth,
		domain.AttachmentAnxious:  domain.ArchetypeHamster,
		domain.AttachmentFearful:  domain.ArchetypeSnowHare,
	},
}

// ArchetypeFor looks up the secondary label for a (style, attachment) pair.
func ArchetypeFor(style domain.LoveStyle, attachment domain.Attachment) domain.Archetype {
	if a, ok := archetypeMatrix[style][attachment]; ok {
		return a
	}
	return DefaultArchetype
}

// Archetypes lists every archetype reachable from the matrix, in matrix order.
func Archetypes() []domain.Archetype {
	out := make([]domain.Archetype, 0, len(domain.LoveStyles)*len(domain.Attachments))
	for _, s := range domain.LoveStyles {
		for _, a := range domain.Attachments {
			if arch, ok := archetypeMatrix[s][a]; ok {
				out = append(out, arch)
			}
		}
	}
	return out
}
