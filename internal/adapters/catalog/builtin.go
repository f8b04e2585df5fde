package catalog

import "github.com/bnema/mllib-cli/internal/domain"

// builtinLibraries is the catalog shipped with the binary. Sizes are static
// advisory estimates in megabytes, not live registry numbers.
func builtinLibraries() []domain.Library {
	return []domain.Library{
		{Name: "tensorflow", Category: domain.CategoryCoreFrameworks, SizeMB: 2048, Description: "Google's deep learning framework"},
		{Name: "torch", Category: domain.CategoryCoreFrameworks, SizeMB: 4096, Description: "Facebook's PyTorch for research & production"},
		{Name: "scikit-learn", Category: domain.CategoryCoreFrameworks, SizeMB: 300, Description: "Traditional ML algorithms & tools"},
		{Name: "keras", Category: domain.CategoryCoreFrameworks, SizeMB: 100, Description: "High-level neural network API"},
		{Name: "jax", Category: domain.CategoryCoreFrameworks, SizeMB: 600, Description: "Automatic differentiation & XLA"},
		{Name: "xgboost", Category: domain.CategoryCoreFrameworks, SizeMB: 200, Description: "Gradient boosting framework"},

		{Name: "matplotlib", Category: domain.CategoryVisualization, SizeMB: 50, Description: "Basic plotting library"},
		{Name: "plotly", Category: domain.CategoryVisualization, SizeMB: 100, Description: "Interactive visualization"},
		{Name: "seaborn", Category: domain.CategoryVisualization, SizeMB: 20, Description: "Statistical data visualization"},
		{Name: "bokeh", Category: domain.CategoryVisualization, SizeMB: 80, Description: "Web-based visualization"},
		{Name: "altair", Category: domain.CategoryVisualization, SizeMB: 30, Description: "Declarative visualization"},

		{Name: "transformers", Category: domain.CategoryNLP, SizeMB: 5120, Description: "State-of-the-art NLP models"},
		{Name: "spacy", Category: domain.CategoryNLP, SizeMB: 1024, Description: "Industrial-strength NLP"},
		{Name: "nltk", Category: domain.CategoryNLP, SizeMB: 500, Description: "Natural Language Toolkit"},
		{Name: "gensim", Category: domain.CategoryNLP, SizeMB: 200, Description: "Topic modeling & document similarity"},
		{Name: "sentence-transformers", Category: domain.CategoryNLP, SizeMB: 1024, Description: "Text embeddings & similarity"},
	}
}
