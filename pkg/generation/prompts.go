package generation

// System instructions describe the exact JSON shape expected per artifact
// kind. The model does not always comply; the normalizer absorbs the misses.

const (
	flashcardSystemPrompt = "You are an expert educator. Create flashcards from the given content. " +
		"Return a JSON array of flashcard objects with 'front' and 'back' properties. " +
		"Focus on key concepts, definitions, and important facts."

	quizSystemPrompt = "You are an expert quiz creator. Create a quiz from the given content. " +
		"Return a JSON object with 'title', 'description', and 'questions' array. " +
		"Each question should have 'question', 'type' ('multiple_choice' or 'true_false'), " +
		"'options' (array), 'correct_answer', and 'explanation' properties."

	summarySystemPrompt = "You are an expert summarizer. Create a comprehensive summary of the given content. " +
		"Return a JSON object with 'title', 'content' (the summary), and 'keyPoints' (array of key points) properties."

	mindMapSystemPrompt = "You are an expert at creating mind maps. Create a mind map structure from the given content. " +
		"Return a JSON object with 'title', 'nodes' array (each with id, label, type, position {x, y}), " +
		"and 'edges' array (each with id, source, target) properties. " +
		"Create a hierarchical structure with a central topic and related subtopics."
)
