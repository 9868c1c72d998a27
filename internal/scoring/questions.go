package scoring

import "love-match/internal/domain"

const (
	lsPassion    = domain.LoveStylePassion
	lsGame       = domain.LoveStyleGame
	lsFriendship = domain.LoveStyleFriendship
	lsPragmatic  = domain.LoveStylePragmatic
	lsMania      = domain.LoveStyleMania
	lsAgape      = domain.LoveStyleAgape

	atSecure   = domain.AttachmentSecure
	atAvoidant = domain.AttachmentAvoidant
	atAnxious  = domain.AttachmentAnxious
	atFearful  = domain.AttachmentFearful

	llWords       = domain.LoveLanguageWords
	llQualityTime = domain.LoveLanguageQualityTime
	llActs        = domain.LoveLanguageActs
	llPhysical    = domain.LoveLanguagePhysicalHigh

	stIntimacy   = domain.DimensionIntimacy
	stPassion    = domain.DimensionPassion
	stCommitment = domain.DimensionCommitment

	gmHealthy       = domain.ConflictHealthy
	gmCriticism     = domain.ConflictCriticism
	gmDefensiveness = domain.ConflictDefensiveness
	gmStonewalling  = domain.ConflictStonewalling
	gmContempt      = domain.ConflictContempt
)

// questions is the canonical questionnaire: Q1-Q23 feed the profile, Q24-Q26
// are the exchange Likert items used only for matching.
var questions = []Question{
	{ID: "Q1", Kind: KindProfile, Text: "The puppy that always clings to you suddenly goes quiet one day. You:", Options: []Option{
		{Key: "A", Text: "Understand it needs its own space too", Mapping: DimensionMapping{Style: lean(lsFriendship, lsPassion), Attachment: one(atSecure), Language: one(llQualityTime)}},
		{Key: "B", Text: "Worry it is upset about something", Mapping: DimensionMapping{Style: one(lsMania), Attachment: one(atAnxious), Language: one(llWords)}},
		{Key: "C", Text: "Enjoy the rare moment of quiet", Mapping: DimensionMapping{Style: one(lsGame), Attachment: one(atAvoidant)}},
		{Key: "D", Text: "Feel anxious and want to know right away what is wrong", Mapping: DimensionMapping{Style: pair(lsMania, lsPassion), Attachment: one(atAnxious), Language: one(llPhysical)}},
		{Key: "E", Text: "Prepare extra treats and toys and watch quietly from nearby", Mapping: DimensionMapping{Style: pair(lsAgape, lsFriendship), Attachment: one(atAnxious), Language: one(llActs)}},
	}},
	{ID: "Q2", Kind: KindProfile, Text: "The pace you prefer things to unfold at is:", Options: []Option{
		{Key: "A", Text: "Sweeping in fast like the tide", Mapping: DimensionMapping{Style: one(lsPassion), Attachment: pair(atAnxious, atSecure), Language: one(llPhysical)}},
		{Key: "B", Text: "Drifting by lightly like a breeze", Mapping: DimensionMapping{Style: one(lsGame), Attachment: pair(atAvoidant, atSecure), Language: one(llWords)}},
		{Key: "C", Text: "Settling in slowly like tree roots", Mapping: DimensionMapping{Style: one(lsFriendship), Attachment: pair(atSecure, atAvoidant), Language: one(llQualityTime)}},
		{Key: "D", Text: "Coming close with warmth like a flame", Mapping: DimensionMapping{Style: one(lsMania), Attachment: one(atAnxious), Language: one(llPhysical)}},
		{Key: "E", Text: "Following the natural rhythm", Mapping: DimensionMapping{Style: one(lsAgape), Attachment: one(atSecure), Language: one(llQualityTime)}},
	}},
	{ID: "Q3", Kind: KindProfile, Text: "A crack opens in the ground ahead of you. You:", Options: []Option{
		{Key: "A", Text: "Find a way to fill it", Mapping: DimensionMapping{Style: one(lsPragmatic), Attachment: one(atSecure)}},
		{Key: "B", Text: "Look at the crack first", Mapping: DimensionMapping{Style: one(lsMania), Attachment: one(atAnxious)}},
		{Key: "C", Text: "Take a long detour around it", Mapping: DimensionMapping{Style: one(lsGame), Attachment: one(atAvoidant)}},
		{Key: "D", Text: "Want to fix it but are unsure how", Mapping: DimensionMapping{Style: one(lsPragmatic), Attachment: one(atFearful)}},
	}},
	{ID: "Q4", Kind: KindProfile, Text: "On a rainy night you hear someone calling you. You:", Options: []Option{
		{Key: "A", Text: "Answer loudly and walk toward the voice to ask", Mapping: DimensionMapping{Style: lean(lsFriendship, lsPassion), Attachment: pair(atSecure, atAnxious), Language: one(llQualityTime)}},
		{Key: "B", Text: "Hide nervously, then answer cautiously", Mapping: DimensionMapping{Style: one(lsMania), Attachment: one(atFearful)}},
		{Key: "C", Text: "Pretend not to hear and leave quickly", Mapping: DimensionMapping{Style: one(lsPragmatic), Attachment: one(atFearful)}},
		{Key: "D", Text: "Worry they are getting soaked and go share your umbrella", Mapping: DimensionMapping{Style: one(lsAgape), Attachment: one(atSecure), Language: one(llActs)}},
	}},
	{ID: "Q5", Kind: KindProfile, Text: "You wake up to a pile of unread messages. Your first reaction:", Options: []Option{
		{Key: "A", Text: "Eager to see what they say", Mapping: DimensionMapping{Style: one(lsFriendship), Attachment: one(atSecure), Language: one(llQualityTime)}},
		{Key: "B", Text: "A jolt of worry that something happened", Mapping: DimensionMapping{Style: one(lsMania), Attachment: one(atAnxious), Language: one(llWords)}},
		{Key: "C", Text: "How annoying, leave them for later", Mapping: DimensionMapping{Style: one(lsGame), Attachment: one(atAvoidant)}},
		{Key: "D", Text: "Happy to hear from people and feel valued", Mapping: DimensionMapping{Style: pair(lsAgape, lsPassion), Attachment: one(atSecure), Language: one(llWords)}},
	}},
	{ID: "Q6", Kind: KindProfile, Text: "You go on an adventure with the most important person in your life. You:", Options: []Option{
		{Key: "A", Text: "Pick the safe route", Mapping: DimensionMapping{Style: one(lsFriendship), Attachment: one(atSecure)}},
		{Key: "B", Text: "Pick the thrilling route", Mapping: DimensionMapping{Style: pair(lsGame, lsPassion), Attachment: one(atSecure)}},
		{Key: "C", Text: "Let them lead", Mapping: DimensionMapping{Style: one(lsMania), Attachment: one(atAnxious), Language: one(llPhysical)}},
		{Key: "D", Text: "Plan every route precisely", Mapping: DimensionMapping{Style: one(lsPragmatic), Attachment: one(atFearful)}},
	}},
	{ID: "Q7", Kind: KindProfile, Text: "One morning you receive an unsigned gift card. You:", Options: []Option{
		{Key: "A", Text: "Feel warmed by the kindness", Mapping: DimensionMapping{Style: pair(lsPassion, lsFriendship), Attachment: one(atSecure), Language: one(llQualityTime)}},
		{Key: "B", Text: "Spend all day wondering who sent it", Mapping: DimensionMapping{Style: one(lsMania), Attachment: one(atAnxious)}},
		{Key: "C", Text: "Love the surprise but feel a little lost", Mapping: DimensionMapping{Style: one(lsPassion), Attachment: one(atAvoidant)}},
		{Key: "D", Text: "Suspect you forgot something important", Mapping: DimensionMapping{Style: one(lsPragmatic), Attachment: one(atFearful)}},
		{Key: "E", Text: "Want to send a gift back as soon as possible", Mapping: DimensionMapping{Style: one(lsAgape), Attachment: pair(atSecure, atAnxious), Language: one(llActs)}},
	}},
	{ID: "Q8", Kind: KindProfile, Text: "You pass a half-open door and hear someone playing the piano inside. You:", Options: []Option{
		{Key: "A", Text: "Knock softly and ask if you can listen for a while", Mapping: DimensionMapping{Style: pair(lsPassion, lsFriendship), Attachment: one(atSecure), Language: one(llQualityTime)}},
		{Key: "B", Text: "Lean by the door, listen a bit longer, then go", Mapping: DimensionMapping{Style: one(lsFriendship), Attachment: pair(atSecure, atAnxious), Language: one(llQualityTime)}},
		{Key: "C", Text: "Remember the place so you can come back", Mapping: DimensionMapping{Style: pair(lsPragmatic, lsFriendship), Attachment: one(atSecure)}},
		{Key: "D", Text: "Quietly close the door so nobody is disturbed", Mapping: DimensionMapping{Style: one(lsAgape), Attachment: one(atSecure), Language: one(llActs)}},
		{Key: "E", Text: "Leave a small gift by the door and walk away", Mapping: DimensionMapping{Style: pair(lsAgape, lsMania), Attachment: one(atAvoidant), Language: one(llQualityTime)}},
	}},
	{ID: "Q9", Kind: KindProfile, Text: "A small animal you just met suddenly clings to you. You:", Options: []Option{
		{Key: "A", Text: "Crouch down and check whether it needs help", Mapping: DimensionMapping{Style: one(lsAgape), Attachment: one(atSecure), Language: one(llActs)}},
		{Key: "B", Text: "Want to play but are careful, unsure what is best", Mapping: DimensionMapping{Style: pair(lsFriendship, lsPassion), Attachment: one(atAnxious)}},
		{Key: "C", Text: "Smile at it without much contact", Mapping: DimensionMapping{Style: one(lsGame), Attachment: one(atAvoidant)}},
		{Key: "D", Text: "Take it home to look after it", Mapping: DimensionMapping{Style: pair(lsAgape, lsPragmatic), Attachment: one(atSecure), Language: one(llActs)}},
	}},
	{ID: "Q10", Kind: KindProfile, Text: "A bridge you cross every day is suddenly closed. You:", Options: []Option{
		{Key: "A", Text: "Fine, find another route", Mapping: DimensionMapping{Style: one(lsPragmatic), Attachment: one(atSecure)}},
		{Key: "B", Text: "Want to know why", Mapping: DimensionMapping{Style: one(lsPragmatic), Attachment: one(atAnxious)}},
		{Key: "C", Text: "Take the chance to try a completely different road", Mapping: DimensionMapping{Style: one(lsGame), Attachment: one(atSecure)}},
		{Key: "D", Text: "Freeze for a moment and message a friend for advice", Mapping: DimensionMapping{Style: one(lsFriendship), Attachment: one(atAnxious)}},
	}},
	{ID: "Q11", Kind: KindProfile, Text: "Someone gives you a fragile seedling. You:", Options: []Option{
		{Key: "A", Text: "Care for it closely and water it on schedule", Mapping: DimensionMapping{Style: pair(lsFriendship, lsAgape), Attachment: one(atSecure), Language: one(llQualityTime)}},
		{Key: "B", Text: "Research carefully, worried you will fail it", Mapping: DimensionMapping{Style: one(lsPragmatic), Attachment: one(atAnxious)}},
		{Key: "C", Text: "Put it by the window and let it grow freely", Mapping: DimensionMapping{Style: one(lsGame), Attachment: one(atAvoidant)}},
		{Key: "D", Text: "Rush out to buy fertilizer and a pot", Mapping: DimensionMapping{Style: pair(lsAgape, lsPragmatic), Attachment: pair(atSecure, atAnxious), Language: one(llActs)}},
	}},
	{ID: "Q12", Kind: KindProfile, Text: "On your journey you step into an unknown city. You:", Options: []Option{
		{Key: "A", Text: "Sit down at a restaurant that smells great", Mapping: DimensionMapping{Style: one(lsPassion), Attachment: one(atSecure)}},
		{Key: "B", Text: "Buy an outfit in the local style", Mapping: DimensionMapping{Style: one(lsPragmatic), Attachment: one(atAnxious)}},
		{Key: "C", Text: "Wander the streets", Mapping: DimensionMapping{Style: one(lsGame), Attachment: one(atSecure)}},
		{Key: "D", Text: "Head to the visitor center for every brochure", Mapping: DimensionMapping{Style: one(lsPragmatic), Attachment: one(atFearful)}},
		{Key: "E", Text: "Befriend the first people you meet, you do not want to go alone", Mapping: DimensionMapping{Style: one(lsFriendship), Attachment: one(atFearful)}},
	}},
	{ID: "Q13", Kind: KindProfile, Text: "Walking by the river at night, an empty boat drifts toward you. You:", Options: []Option{
		{Key: "A", Text: "Walk up and gently touch the boat", Mapping: DimensionMapping{Style: one(lsFriendship), Attachment: one(atSecure), Language: one(llQualityTime)}},
		{Key: "B", Text: "Stop and watch where it drifts", Mapping: DimensionMapping{Style: one(lsPragmatic), Attachment: one(atAnxious)}},
		{Key: "C", Text: "Not really interested, keep walking", Mapping: DimensionMapping{Style: one(lsPragmatic), Attachment: one(atAvoidant)}},
		{Key: "D", Text: "Find it fun and follow the boat", Mapping: DimensionMapping{Style: pair(lsGame, lsPassion), Attachment: one(atSecure)}},
	}},
	{ID: "Q14", Kind: KindProfile, Text: "In a grove, someone appears out of nowhere and says they are a wizard. You:", Options: []Option{
		{Key: "A", Text: "\"Oh, so what? I'm off.\"", Mapping: DimensionMapping{Style: one(lsPragmatic), Attachment: one(atSecure)}},
		{Key: "B", Text: "\"Why should I believe you?\"", Mapping: DimensionMapping{Style: one(lsMania), Attachment: one(atFearful)}},
		{Key: "C", Text: "\"Can you grant my wish then?\"", Mapping: DimensionMapping{Style: one(lsGame), Attachment: one(atAnxious)}},
		{Key: "D", Text: "\"Do you need my help?\"", Mapping: DimensionMapping{Style: one(lsAgape), Attachment: one(atSecure), Language: one(llActs)}},
	}},
	{ID: "Q15", Kind: KindProfile, Text: "You are invited to a banquet. You will definitely bring:", Options: []Option{
		{Key: "A", Text: "A few props for a party trick, just in case", Mapping: DimensionMapping{Style: one(lsGame), Attachment: one(atFearful), Language: one(llQualityTime)}},
		{Key: "B", Text: "A small mirror to check how you look", Mapping: DimensionMapping{Style: one(lsMania), Attachment: one(atAnxious)}},
		{Key: "C", Text: "A stack of business cards for networking", Mapping: DimensionMapping{Style: one(lsPragmatic), Attachment: one(atSecure)}},
		{Key: "D", Text: "Depends on the mood", Mapping: DimensionMapping{Style: one(lsPassion), Attachment: one(atFearful)}},
	}},
	{ID: "Q16", Kind: KindProfile, Text: "At a campfire with friends you stare into the flames and think:", Options: []Option{
		{Key: "A", Text: "\"What a warm, lovely night\"", Mapping: DimensionMapping{Style: one(lsFriendship), Attachment: one(atSecure)}},
		{Key: "B", Text: "\"How moving, it brings back so many good moments\"", Mapping: DimensionMapping{Style: one(lsMania), Attachment: one(atAnxious)}},
		{Key: "C", Text: "Play around with friends, lost in the moment", Mapping: DimensionMapping{Style: one(lsGame), Attachment: one(atSecure)}},
		{Key: "D", Text: "\"Is this fire safe? Could someone get hurt?\"", Mapping: DimensionMapping{Style: pair(lsPragmatic, lsAgape), Attachment: one(atFearful)}},
		{Key: "E", Text: "Quietly gaze at the person you like", Mapping: DimensionMapping{Style: one(lsMania), Attachment: one(atAvoidant)}},
	}},
	{ID: "Q17", Kind: KindProfile, Text: "Night falls and you must choose one lamp to light. You:", Options: []Option{
		{Key: "A", Text: "Quickly light the one you use most", Mapping: DimensionMapping{Style: one(lsPragmatic), Attachment: one(atAnxious)}},
		{Key: "B", Text: "Wait until it gets darker", Mapping: DimensionMapping{Style: one(lsFriendship), Attachment: one(atAvoidant)}},
		{Key: "C", Text: "Moonlight is enough, why bother", Mapping: DimensionMapping{Style: one(lsGame), Attachment: one(atAvoidant)}},
		{Key: "D", Text: "Check whether someone else needs a lamp and lend it", Mapping: DimensionMapping{Style: one(lsAgape), Attachment: one(atSecure), Language: one(llActs)}},
	}},
	{ID: "Q18", Kind: KindProfile, Text: "At a fork with several very different paths you usually:", Options: []Option{
		{Key: "A", Text: "Pick the one that looks gentle", Mapping: DimensionMapping{Style: one(lsPragmatic), Attachment: one(atAnxious)}},
		{Key: "B", Text: "Pick the one with great scenery", Mapping: DimensionMapping{Style: one(lsGame), Attachment: one(atSecure)}},
		{Key: "C", Text: "Walk back to the last stop to check the map", Mapping: DimensionMapping{Style: one(lsPragmatic), Attachment: one(atFearful)}},
		{Key: "D", Text: "Hesitate at the fork for a long time before deciding", Mapping: DimensionMapping{Style: one(lsMania), Attachment: one(atFearful)}},
	}},
	{ID: "Q19", Kind: KindProfile, Text: "Walking with someone important, they suddenly stop. You:", Options: []Option{
		{Key: "A", Text: "\"Why did you stop?\"", Mapping: DimensionMapping{Style: one(lsFriendship), Attachment: one(atSecure), Triangular: one(stIntimacy), Conflict: one(gmHealthy)}},
		{Key: "B", Text: "\"What's wrong? Did something happen?\"", Mapping: DimensionMapping{Style: one(lsMania), Attachment: one(atAnxious), Triangular: one(stPassion), Conflict: one(gmCriticism)}},
		{Key: "C", Text: "Pretend not to notice and keep going", Mapping: DimensionMapping{Style: one(lsGame), Attachment: one(atAvoidant), Conflict: one(gmStonewalling)}},
		{Key: "D", Text: "Stop silently and wait for them to speak", Mapping: DimensionMapping{Style: pair(lsPragmatic, lsMania), Attachment: pair(atAnxious, atAvoidant), Conflict: one(gmDefensiveness)}},
		{Key: "E", Text: "Go over and adjust their backpack", Mapping: DimensionMapping{Style: one(lsAgape), Attachment: one(atSecure), Triangular: pair(stIntimacy, stCommitment)}},
	}},
	{ID: "Q20", Kind: KindProfile, Text: "Climbing a hill, they complain it is too cold. You:", Options: []Option{
		{Key: "A", Text: "\"Take mine.\"", Mapping: DimensionMapping{Style: one(lsAgape), Attachment: one(atSecure), Triangular: one(stIntimacy), Conflict: one(gmHealthy)}},
		{Key: "B", Text: "\"Of course it's cold! Let's move!\"", Mapping: DimensionMapping{Style: one(lsPassion), Attachment: one(atAnxious), Triangular: one(stPassion)}},
		{Key: "C", Text: "\"What can I do? Should have dressed warmer!\"", Mapping: DimensionMapping{Style: one(lsPragmatic), Attachment: one(atAnxious), Conflict: pair(gmCriticism, gmContempt)}},
		{Key: "D", Text: "\"Yeah, everyone's cold.\"", Mapping: DimensionMapping{Style: one(lsGame), Attachment: one(atAvoidant), Conflict: one(gmStonewalling)}},
		{Key: "E", Text: "\"I'd love to give you a jacket, but I'm cold too, please understand.\"", Mapping: DimensionMapping{Style: one(lsPragmatic), Attachment: one(atAnxious), Conflict: one(gmDefensiveness)}},
	}},
	{ID: "Q21", Kind: KindProfile, Text: "Halfway there, they suggest changing the route. You:", Options: []Option{
		{Key: "A", Text: "\"Why? Let's talk it through.\"", Mapping: DimensionMapping{Style: pair(lsFriendship, lsPragmatic), Attachment: one(atSecure), Triangular: one(stCommitment), Conflict: one(gmHealthy)}},
		{Key: "B", Text: "\"Sure, let's try the new way!\"", Mapping: DimensionMapping{Style: one(lsPassion), Attachment: one(atSecure), Triangular: one(stPassion)}},
		{Key: "C", Text: "\"Whatever, you decide.\"", Mapping: DimensionMapping{Style: one(lsGame), Attachment: one(atAvoidant), Conflict: one(gmStonewalling)}},
		{Key: "D", Text: "\"Is it because you don't like the way I picked?\"", Mapping: DimensionMapping{Style: one(lsMania), Attachment: one(atAnxious), Conflict: one(gmDefensiveness)}},
	}},
	{ID: "Q22", Kind: KindProfile, Text: "On the trip they say you did not help fetch water last time. You:", Options: []Option{
		{Key: "A", Text: "Wonder if it is true and understand they are exhausted", Mapping: DimensionMapping{Style: one(lsFriendship), Attachment: one(atSecure), Conflict: one(gmHealthy)}},
		{Key: "B", Text: "Immediately explain that you did help", Mapping: DimensionMapping{Style: one(lsPragmatic), Attachment: one(atAnxious), Conflict: one(gmDefensiveness)}},
		{Key: "C", Text: "Point out that you did it the time before and they did not help", Mapping: DimensionMapping{Style: one(lsGame), Attachment: one(atAnxious), Conflict: one(gmCriticism)}},
		{Key: "D", Text: "Stay silent", Mapping: DimensionMapping{Style: one(lsGame), Attachment: one(atAvoidant), Conflict: one(gmStonewalling)}},
		{Key: "E", Text: "Feel they are being disrespectful", Mapping: DimensionMapping{Style: one(lsMania), Attachment: one(atAnxious), Conflict: one(gmContempt)}},
	}},
	{ID: "Q23", Kind: KindProfile, Text: "Sitting outside the tent at night, they say \"let's talk\". You:", Options: []Option{
		{Key: "A", Text: "Get ready to listen and bring them a glass of water", Mapping: DimensionMapping{Style: pair(lsFriendship, lsAgape), Attachment: one(atSecure), Triangular: one(stIntimacy)}},
		{Key: "B", Text: "Feel a flash of nerves but are willing to open up", Mapping: DimensionMapping{Style: one(lsMania), Attachment: one(atAnxious), Triangular: one(stPassion)}},
		{Key: "C", Text: "Want to put it off until tomorrow", Mapping: DimensionMapping{Style: one(lsGame), Attachment: one(atAvoidant), Conflict: one(gmStonewalling)}},
		{Key: "D", Text: "Suspect you are about to be blamed again", Mapping: DimensionMapping{Style: pair(lsPragmatic, lsMania), Attachment: one(atAnxious), Conflict: pair(gmCriticism, gmDefensiveness)}},
	}},
	likert(QuestionInvestment, "In your relationship, who is more invested?", [5]string{
		"My partner is fully invested and I am not at all",
		"My partner is more invested than I am",
		"We are equally invested",
		"I am more invested than my partner",
		"I am fully invested and my partner is not at all",
	}),
	likert(QuestionEquity, "Do you feel your relationship is balanced?", [5]string{
		"Control lies entirely with my partner",
		"Control leans toward my partner",
		"We are on equal footing",
		"Control leans toward me",
		"Control lies entirely with me",
	}),
	likert(QuestionSatisfaction, "How satisfied are you with your current relationship?", [5]string{
		"Not satisfied at all",
		"Not very satisfied",
		"Moderately satisfied",
		"Fairly satisfied",
		"Very satisfied",
	}),
}
