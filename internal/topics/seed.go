package topics

// seedTopics returns the built-in topic library. Content is authored, not
// derived; the classifier maps each topic onto an exercise battery from
// its title and explanation alone.
func seedTopics() []Topic {
	return []Topic{
		{
			ID:    "present-simple",
			Title: "Present Simple",
			Explanation: "The present simple describes habits, routines, and facts " +
				"that are generally true. Third-person singular subjects take -s: " +
				"he works, she goes, it rains.",
			Examples: "She works in a bank.\n" +
				"John usually goes to work by train.\n" +
				"Do you play tennis every weekend?",
			Notes: "Watch for the dropped -s with he/she/it. It is the single most common slip.",
		},
		{
			ID:    "past-simple",
			Title: "Past Simple",
			Explanation: "The past simple describes finished actions at a definite " +
				"time in the past. Regular verbs add -ed; irregular verbs change form: " +
				"go went, see saw, buy bought.",
			Examples: "We visited Rome last summer.\n" +
				"She bought a new bicycle yesterday.\n" +
				"They didn't watch the film.",
		},
		{
			ID:    "present-continuous",
			Title: "Present Continuous",
			Explanation: "The present continuous describes actions happening now or " +
				"around now, and fixed future arrangements. Form: am/is/are + verb-ing.",
			Examples: "It is raining outside.\n" +
				"I'm meeting Ana at six tonight.\n" +
				"They are building a new school.",
		},
		{
			ID:    "present-perfect",
			Title: "Present Perfect",
			Explanation: "The present perfect links the past to the present: life " +
				"experience, recent events with present results, and unfinished time " +
				"periods. Form: have/has + past participle.",
			Examples: "She has lived in Madrid for ten years.\n" +
				"I have never tried sushi.\n" +
				"Have you finished your homework yet?",
			Notes: "Contrast with past simple: 'for ten years' (still true) vs 'in 2010' (finished).",
		},
		{
			ID:    "conditionals",
			Title: "First and Second Conditional",
			Explanation: "Conditionals describe results that depend on a condition. " +
				"First conditional (if + present, will + verb) is for real " +
				"possibilities; second conditional (if + past, would + verb) is for " +
				"unreal or imagined situations.",
			Examples: "If it rains, we will stay at home.\n" +
				"If I won the lottery, I would travel the world.",
		},
		{
			ID:    "passive-voice",
			Title: "The Passive Voice",
			Explanation: "The passive voice puts the receiver of an action in subject " +
				"position. Form: be + past participle. The doer is omitted or " +
				"introduced with 'by'.",
			Examples: "The letter was written by Maria.\n" +
				"English is spoken all over the world.\n" +
				"The bridge was built in 1932.",
		},
		{
			ID:    "question-tags",
			Title: "Question Tags",
			Explanation: "Question tags turn a statement into a question: a positive " +
				"statement takes a negative tag and a negative statement takes a " +
				"positive tag. The tag repeats the auxiliary, or uses do/does/did " +
				"when there is none.",
			Examples: "You're coming to the party, aren't you?\n" +
				"She doesn't eat meat, does she?",
		},
		{
			ID:    "articles",
			Title: "Articles: a, an, the",
			Explanation: "Use a/an for something mentioned for the first time or one " +
				"of many; use the for something specific or already known. Some nouns " +
				"take no article at all.",
			Examples: "I saw a dog in the park.\n" +
				"The dog was chasing a ball.",
		},
	}
}
