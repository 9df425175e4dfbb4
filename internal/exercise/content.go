package exercise

import "github.com/nkapoor/lingua/internal/pattern"

// Hand-authored exercise batteries, one per non-generic category. These
// are content tables: the canonical answers, distractors, explanations
// and hints are fixed editorial material, not derived from the topic
// text. Each battery spans several exercise kinds so a session mixes
// recognition, production and correction.

func batteryFor(cat pattern.Category) []Exercise {
	switch cat {
	case pattern.PresentSimple:
		return presentSimpleBattery()
	case pattern.PastSimple:
		return pastSimpleBattery()
	case pattern.PresentContinuous:
		return presentContinuousBattery()
	case pattern.PresentPerfect:
		return presentPerfectBattery()
	case pattern.Conditional:
		return conditionalBattery()
	case pattern.Passive:
		return passiveBattery()
	default:
		return nil
	}
}

func presentSimpleBattery() []Exercise {
	return []Exercise{
		&MultipleChoice{
			Meta: Meta{
				Instruction: "Choose the correct sentence.",
				Explain: "With he/she/it the present simple verb takes -s: " +
					"\"She works in a bank.\"",
				HintText: "Third-person singular subjects need an -s on the verb.",
			},
			Options: []string{
				"She work in a bank.",
				"She works in a bank.",
				"She is work in a bank.",
				"She working in a bank.",
			},
			Answer: "She works in a bank.",
		},
		&FillBlank{
			Meta: Meta{
				Instruction: "Complete the sentence.",
				Explain: "\"John\" is third-person singular, so the verb is " +
					"\"goes\": John usually goes to work by train.",
				HintText: "The verb is \"go\" — but John is he.",
			},
			Text:    "John usually " + BlankMarker + " to work by train.",
			Answers: []string{"goes"},
		},
		&TrueFalse{
			Meta: Meta{
				Instruction: "True or false?",
				Explain: "True. Habits, routines and general facts are exactly " +
					"what the present simple is for.",
			},
			Statement: "The present simple is used for habits and routines.",
			Answer:    "true",
		},
		&Reorder{
			Meta: Meta{
				Instruction: "Put the words in order.",
				Explain: "Present simple questions start with do/does: " +
					"\"Do you play tennis every weekend?\"",
				HintText: "Questions in the present simple start with \"Do\".",
			},
			Sentence:  "Do you play tennis every weekend?",
			Fragments: []string{"Do", "you", "play", "tennis", "every", "weekend", "?"},
		},
	}
}

func pastSimpleBattery() []Exercise {
	return []Exercise{
		&MultipleChoice{
			Meta: Meta{
				Instruction: "Choose the correct past form.",
				Explain: "\"Buy\" is irregular: buy — bought — bought. " +
					"\"Buyed\" does not exist.",
				HintText: "It is an irregular verb.",
			},
			Options: []string{
				"She buyed a new bicycle.",
				"She bought a new bicycle.",
				"She has buy a new bicycle.",
			},
			Answer: "She bought a new bicycle.",
		},
		&FillBlank{
			Meta: Meta{
				Instruction: "Complete the sentence.",
				Explain: "\"Go\" is irregular: go — went — gone. " +
					"We went to Rome last summer.",
				HintText: "Go is one of the most irregular verbs in English.",
			},
			Text:    "We " + BlankMarker + " to Rome last summer.",
			Answers: []string{"went"},
		},
		&Reorder{
			Meta: Meta{
				Instruction: "Put the words in order.",
				Explain: "Negatives in the past simple use didn't + base form: " +
					"\"They didn't watch the film.\"",
				HintText: "After \"didn't\" the verb returns to its base form.",
			},
			Sentence:  "They didn't watch the film.",
			Fragments: []string{"They", "didn't", "watch", "the", "film", "."},
		},
		&ErrorIdentification{
			Meta: Meta{
				Instruction: "Which sentence contains a mistake?",
				Explain: "After \"did\" the verb stays in its base form: " +
					"\"Did you see the match?\", never \"Did you saw\".",
			},
			Sentence: "Find the sentence that breaks the past simple.",
			Options: []ErrorOption{
				{OptionID: "a", Text: "Did you saw the match?", IsError: true},
				{OptionID: "b", Text: "I saw the match yesterday.", IsError: false},
				{OptionID: "c", Text: "We didn't see the match.", IsError: false},
			},
		},
	}
}

func presentContinuousBattery() []Exercise {
	return []Exercise{
		&MultipleChoice{
			Meta: Meta{
				Instruction: "Choose the correct sentence.",
				Explain: "The present continuous needs be + verb-ing: " +
					"\"It is raining outside.\"",
				HintText: "Two pieces: a form of \"be\" and the -ing form.",
			},
			Options: []string{
				"It raining outside.",
				"It is raining outside.",
				"It rains outside now.",
				"It is rain outside.",
			},
			Answer: "It is raining outside.",
		},
		&FillBlank{
			Meta: Meta{
				Instruction: "Complete the sentence with the present continuous of \"build\".",
				Explain: "They are building a new school — are + building. " +
					"The contraction \"'re building\" is also fine.",
				HintText: "The subject is \"they\".",
			},
			Text:    "They " + BlankMarker + " a new school near the station.",
			Answers: []string{"are building", "'re building"},
		},
		&TrueFalse{
			Meta: Meta{
				Instruction: "True or false?",
				Explain: "True. \"I'm meeting Ana at six\" is a fixed arrangement — " +
					"a normal use of the present continuous.",
			},
			Statement: "The present continuous can describe a fixed future arrangement.",
			Answer:    "true",
		},
		&Reorder{
			Meta: Meta{
				Instruction: "Put the words in order.",
				Explain:     "Subject + am/is/are + verb-ing: \"I'm meeting Ana at six tonight.\"",
			},
			Sentence:  "I'm meeting Ana at six tonight.",
			Fragments: []string{"I'm", "meeting", "Ana", "at", "six", "tonight", "."},
		},
	}
}

func presentPerfectBattery() []Exercise {
	return []Exercise{
		&MultipleChoice{
			Meta: Meta{
				Instruction: "Choose the correct sentence.",
				Explain: "An unfinished period (\"for ten years\") takes the " +
					"present perfect: \"She has lived in Madrid for ten years.\"",
				HintText: "She moved to Madrid ten years ago and is still there.",
			},
			Options: []string{
				"She lives in Madrid since ten years.",
				"She has lived in Madrid for ten years.",
				"She lived in Madrid for ten years now.",
				"She is living in Madrid since ten years.",
			},
			Answer: "She has lived in Madrid for ten years.",
		},
		&FillBlank{
			Meta: Meta{
				Instruction: "Complete the sentence with the verb \"live\".",
				Explain: "Both \"has lived\" and \"has been living\" are correct " +
					"here; the continuous form stresses the ongoing stay.",
				HintText: "have/has + past participle — two phrasings work.",
			},
			Text:    "She " + BlankMarker + " in Madrid for ten years.",
			Answers: []string{"has lived", "has been living"},
		},
		&ErrorIdentification{
			Meta: Meta{
				Instruction: "Which sentence contains a mistake?",
				Explain: "A finished time (\"last year\") takes the past simple, " +
					"not the present perfect: \"I visited Japan last year.\"",
			},
			Sentence: "Find the sentence that misuses the present perfect.",
			Options: []ErrorOption{
				{OptionID: "a", Text: "I have never tried sushi.", IsError: false},
				{OptionID: "b", Text: "I have visited Japan last year.", IsError: true},
				{OptionID: "c", Text: "Have you finished your homework yet?", IsError: false},
			},
		},
		&Reorder{
			Meta: Meta{
				Instruction: "Put the words in order.",
				Explain:     "have/has + never + past participle: \"I have never tried sushi.\"",
				HintText:    "\"Never\" sits between \"have\" and the participle.",
			},
			Sentence:  "I have never tried sushi.",
			Fragments: []string{"I", "have", "never", "tried", "sushi", "."},
		},
	}
}

func conditionalBattery() []Exercise {
	return []Exercise{
		&TrueFalse{
			Meta: Meta{
				Instruction: "True or false?",
				Explain: "True. The second conditional (if + past, would + verb) " +
					"describes unreal or imagined situations.",
			},
			Statement: "\"If I won the lottery, I would travel the world\" describes an imagined situation.",
			Answer:    "true",
		},
		&MultipleChoice{
			Meta: Meta{
				Instruction: "Choose the correct first conditional.",
				Explain: "First conditional: if + present simple, will + verb. " +
					"\"If it rains, we will stay at home.\"",
				HintText: "\"Will\" never goes inside the if-clause.",
			},
			Options: []string{
				"If it will rain, we stay at home.",
				"If it rains, we will stay at home.",
				"If it rained, we will stay at home.",
			},
			Answer: "If it rains, we will stay at home.",
		},
		&FillBlank{
			Meta: Meta{
				Instruction: "Complete the second conditional with the verb \"travel\".",
				Explain: "Second conditional result clause: would + base form — " +
					"\"I would travel the world.\"",
				HintText: "The if-clause already has the past form; the result needs \"would\".",
			},
			Text:    "If I won the lottery, I " + BlankMarker + " the world.",
			Answers: []string{"would travel", "'d travel"},
		},
		&Reorder{
			Meta: Meta{
				Instruction: "Put the words in order.",
				Explain:     "If-clause first, then the result: \"If it rains, we will stay at home.\"",
			},
			Sentence:  "If it rains, we will stay at home.",
			Fragments: []string{"If", "it", "rains", ",", "we", "will", "stay", "at", "home", "."},
		},
	}
}

func passiveBattery() []Exercise {
	return []Exercise{
		&MultipleChoice{
			Meta: Meta{
				Instruction: "Choose the passive sentence.",
				Explain: "The passive is be + past participle: " +
					"\"The letter was written by Maria.\"",
				HintText: "Look for a form of \"be\" followed by a participle.",
			},
			Options: []string{
				"Maria wrote the letter.",
				"The letter was written by Maria.",
				"The letter wrote Maria.",
				"Maria was writing the letter.",
			},
			Answer: "The letter was written by Maria.",
		},
		&FillBlank{
			Meta: Meta{
				Instruction: "Complete the passive sentence with the verb \"build\".",
				Explain: "Past passive: was/were + past participle — " +
					"\"The bridge was built in 1932.\"",
				HintText: "The bridge did not do the building.",
			},
			Text:    "The bridge " + BlankMarker + " in 1932.",
			Answers: []string{"was built"},
		},
		&ErrorIdentification{
			Meta: Meta{
				Instruction: "Which sentence contains a mistake?",
				Explain: "The passive needs the past participle, not the base " +
					"form: \"English is spoken\", never \"is speak\".",
			},
			Sentence: "Find the sentence with a broken passive.",
			Options: []ErrorOption{
				{OptionID: "a", Text: "English is speak all over the world.", IsError: true},
				{OptionID: "b", Text: "English is spoken all over the world.", IsError: false},
				{OptionID: "c", Text: "This wine is made in Portugal.", IsError: false},
			},
		},
		&TrueFalse{
			Meta: Meta{
				Instruction: "True or false?",
				Explain: "True. The doer is often omitted when it is unknown or " +
					"obvious; \"by\" introduces it only when it matters.",
			},
			Statement: "A passive sentence can leave out the person who did the action.",
			Answer:    "true",
		},
	}
}
