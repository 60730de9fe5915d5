package engine

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumetric/internal/types"
)

func findKeyword(kws []types.Keyword, norm string) (types.Keyword, bool) {
	for _, k := range kws {
		if k.NormalizedText == norm {
			return k, true
		}
	}
	return types.Keyword{}, false
}

func TestExtractKeywordsMatchesAcrossDocuments(t *testing.T) {
	kws := ExtractKeywords(
		"Proficient in Python and SQL",
		"Looking for Python developer with SQL experience",
	)

	python, ok := findKeyword(kws, "python")
	require.True(t, ok, "python should be extracted")
	assert.True(t, python.IsMatch)
	assert.True(t, python.IsFromJobDescription)
	assert.Equal(t, types.SourceBoth, python.Source)
	assert.Equal(t, types.CategoryTechnical, python.Category)

	sql, ok := findKeyword(kws, "sql")
	require.True(t, ok, "sql should be extracted")
	assert.True(t, sql.IsMatch)
}

func TestExtractKeywordsDropsStopWords(t *testing.T) {
	kws := ExtractKeywords("the and with for in a an", "")
	assert.Empty(t, kws)
}

func TestExtractKeywordsSingularizes(t *testing.T) {
	kws := ExtractKeywords("managed databases and pipelines", "database pipeline")
	db, ok := findKeyword(kws, "database")
	require.True(t, ok)
	assert.True(t, db.IsMatch, "plural resume term should match singular job term")
}

func TestExtractKeywordsDeterministicOrder(t *testing.T) {
	resume := "Go Python Kubernetes Docker SQL leadership communication AWS Terraform"
	job := "Python SQL AWS communication"

	first := ExtractKeywords(resume, job)
	for i := 0; i < 5; i++ {
		again := ExtractKeywords(resume, job)
		require.Equal(t, first, again, "extraction must be deterministic")
	}

	sorted := sort.SliceIsSorted(first, func(i, j int) bool {
		if first[i].NormalizedText != first[j].NormalizedText {
			return first[i].NormalizedText < first[j].NormalizedText
		}
		return first[i].Source < first[j].Source
	})
	assert.True(t, sorted, "keywords must be sorted for stable output")
}

func TestKeywordImportanceBounds(t *testing.T) {
	kws := ExtractKeywords(sampleResume, "python python python python aws certification")
	for _, k := range kws {
		assert.GreaterOrEqual(t, k.Importance, 1, "keyword %q", k.Text)
		assert.LessOrEqual(t, k.Importance, 5, "keyword %q", k.Text)
	}
}
