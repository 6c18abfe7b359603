package dict

// Defaults returns the built-in dictionary tables. Entries are checked in
// order; put more specific patterns before more general ones.
func Defaults() Tables {
	return Tables{
		People: []PersonEntry{
			{Name: "Sam Altman", Role: "CEO", Organization: "OpenAI"},
			{Name: "Dario Amodei", Role: "CEO", Organization: "Anthropic"},
			{Name: "Andrej Karpathy", Role: "Researcher"},
			{Name: "Satya Nadella", Role: "CEO", Organization: "Microsoft"},
			{Name: "Sundar Pichai", Role: "CEO", Organization: "Google"},
			{Name: "Simon Willison", Role: "Researcher"},
			{Name: "Ethan Mollick", Role: "Professor", Organization: "Wharton"},
		},
		Organizations: []OrgEntry{
			{Name: "OpenAI"},
			{Name: "Anthropic"},
			{Name: "Google DeepMind"},
			{Name: "Google"},
			{Name: "Microsoft"},
			{Name: "GitHub"},
			{Name: "Meta"},
			{Name: "Hugging Face"},
			{Name: "Stanford University", Pattern: `\bStanford(?:\s+University)?\b`},
			{Name: "MIT"},
		},
		Places: []PlaceEntry{
			{Name: "San Francisco", Kind: "city"},
			{Name: "New York", Kind: "city"},
			{Name: "London", Kind: "city"},
			{Name: "Seattle", Kind: "city"},
			{Name: "United States", Pattern: `\b(?:United States|USA?)\b`, Kind: "country"},
			{Name: "United Kingdom", Pattern: `\b(?:United Kingdom|UK)\b`, Kind: "country"},
			{Name: "Europe", Kind: "region"},
			{Name: "Silicon Valley", Kind: "region"},
		},
		Tools: []ToolEntry{
			{Name: "ChatGPT", Description: "OpenAI's conversational AI assistant"},
			{Name: "Claude", Description: "Anthropic's AI assistant"},
			{Name: "Gemini", Description: "Google's multimodal AI model family"},
			{Name: "GitHub Copilot", Pattern: `\b(?:GitHub\s+)?Copilot\b`, Description: "AI pair-programming assistant"},
			{Name: "Cursor", Description: "AI-first code editor"},
			{Name: "Midjourney", Description: "AI image generation service"},
			{Name: "NotebookLM", Description: "Google's AI research notebook"},
			{Name: "Excalidraw", Description: "Virtual whiteboard for sketching diagrams"},
			{Name: "Figma", Description: "Collaborative interface design tool"},
			{Name: "PowerPoint", Description: "Microsoft presentation software"},
			{Name: "Python", Description: "General-purpose programming language"},
			{Name: "TypeScript", Description: "Typed superset of JavaScript"},
		},
		Terms: []TermEntry{
			{Term: "LLM", Pattern: `\b(?:LLMs?|large language models?)\b`, Definition: "Large language model"},
			{Term: "prompt engineering", Definition: "Crafting inputs that steer a model's output"},
			{Term: "hallucination", Pattern: `\bhallucinat(?:ion|ions|e|es|ing)\b`, Definition: "A confident but fabricated model output"},
			{Term: "vibe coding", Definition: "Conversational, iterate-by-feel AI-assisted programming"},
			{Term: "RAG", Pattern: `\b(?:RAG|retrieval[- ]augmented generation)\b`, Definition: "Retrieval-augmented generation"},
			{Term: "fine-tuning", Pattern: `\bfine[- ]tun(?:ing|ed|e)\b`, Definition: "Further training a model on task-specific data"},
			{Term: "context window", Definition: "The amount of text a model can attend to at once"},
			{Term: "token", Pattern: `\btokens?\b`, Definition: "The unit of text a model reads and writes"},
			{Term: "agent", Pattern: `\bagents?\b`, Definition: "A model loop that plans and uses tools"},
		},
		Roles: []string{
			"CEO", "CTO", "COO", "CFO", "VP", "President", "Founder",
			"Co-founder", "Director", "Professor", "Head", "Lead",
			"Engineer", "Researcher", "Author", "Designer",
		},
		TLDs: []string{
			"com", "org", "net", "edu", "gov", "io", "ai", "dev", "co",
			"uk", "ly", "me", "app", "so", "gg", "fm", "tv", "sh", "to",
		},
		ShortLinkHosts: []string{
			"bit.ly", "t.co", "goo.gl", "tinyurl.com", "youtu.be",
			"ow.ly", "buff.ly", "is.gd", "rb.gy",
		},
	}
}
