// Package answer maps a learner's question to one of several canned
// explanations. It is a deterministic keyword matcher standing in for a real
// generation backend: no I/O, no randomness, same input same output.
package answer

import "strings"

type rule struct {
	keywords []string
	text     string
}

// Rules are checked in order; the first keyword hit wins.
var rules = []rule{
	{
		keywords: []string{"rag", "retrieval"},
		text: "RAG stands for Retrieval-Augmented Generation. Instead of relying only on what a language model memorized during training, a RAG system first retrieves relevant documents from a knowledge base and then feeds them to the model as context, so the answer is grounded in up-to-date, verifiable sources. Check the linked resources for a walkthrough of building a simple RAG pipeline.",
	},
	{
		keywords: []string{"neural network", "deep learning"},
		text: "A neural network is a stack of simple computing units (neurons) organized in layers. Each unit multiplies its inputs by learned weights, sums them, and passes the result through a non-linear activation. Deep learning just means many such layers, which lets the network learn increasingly abstract features of the data. The resources below include an intro deck and a visual explainer.",
	},
	{
		keywords: []string{"transformer", "attention"},
		text: "Transformers are the architecture behind modern language models. Their key idea is self-attention: every token in the input can directly look at every other token and decide how much it matters, which captures long-range relationships without recurrence. Have a look at the linked material for the classic 'Attention Is All You Need' breakdown.",
	},
	{
		keywords: []string{"large language model", "llm"},
		text: "A large language model is a transformer trained on huge text corpora to predict the next token. That simple objective, at scale, produces a model that can summarize, translate, answer questions, and follow instructions. The linked resources cover how LLMs are trained and how to prompt them effectively.",
	},
	{
		keywords: []string{"embedding", "vector"},
		text: "An embedding is a list of numbers representing a piece of text (or an image, or audio) so that similar things end up close together in vector space. Embeddings power semantic search, clustering, and the retrieval step of RAG systems. See the linked resources for how embeddings are computed and compared.",
	},
	{
		keywords: []string{"prompt"},
		text: "Prompt engineering is the practice of phrasing your input so a language model produces the output you want: giving it a role, examples, constraints, and a clear output format. Small wording changes can move quality a lot. The resources below collect the patterns that work in practice.",
	},
	{
		keywords: []string{"machine learning", "supervised"},
		text: "Machine learning is about fitting a function to data instead of hand-coding rules. In supervised learning you show the algorithm labeled examples and it learns to generalize to unseen ones; the linked resources walk through the standard workflow from data to trained model to evaluation.",
	},
}

const fallback = "I don't have a prepared explanation for that topic yet, but the linked resources are a good place to start. Try asking about RAG, transformers, embeddings, neural networks, or prompt engineering for a more specific answer."

// Generate returns the canned explanation for the first keyword found in the
// query, or the fallback when nothing matches. Matching is case-insensitive
// substring containment.
func Generate(query string) string {
	q := strings.ToLower(query)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(q, kw) {
				return r.text
			}
		}
	}
	return fallback
}
