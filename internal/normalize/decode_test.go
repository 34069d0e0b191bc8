package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDocumentStrict(t *testing.T) {
	doc, err := DecodeDocument([]byte(`{
		"file_info": {"file_name": "a.json", "slide_count": 3},
		"gemini_analysis": {"client_name": "広研", "confidence_score": 70}
	}`))
	require.NoError(t, err)
	require.NotNil(t, doc.Analysis)
	assert.Equal(t, "広研", doc.Analysis.ClientName)
	assert.Equal(t, 3, doc.FileInfo.SlideCount)
}

func TestDecodeDocumentRepairsTrailingComma(t *testing.T) {
	doc, err := DecodeDocument([]byte(`{
		"file_info": {"file_name": "a.json", "slide_count": 3,},
		"gemini_analysis": {"client_name": "広研",},
	}`))
	require.NoError(t, err)
	require.NotNil(t, doc.Analysis)
	assert.Equal(t, "広研", doc.Analysis.ClientName)
}

func TestDecodeDocumentRepairsSingleQuotes(t *testing.T) {
	doc, err := DecodeDocument([]byte(`{'error': 'processing failed'}`))
	require.NoError(t, err)
	assert.Equal(t, "processing failed", doc.Error)
}

func TestDecodeDocumentErrorMarkerSurvives(t *testing.T) {
	doc, err := DecodeDocument([]byte(`{"error": "quota exceeded", "file_info": {"file_name": "x.json"}}`))
	require.NoError(t, err)
	assert.Equal(t, "quota exceeded", doc.Error)
}

func TestValidateDocumentAcceptsBothShapes(t *testing.T) {
	assert.NoError(t, ValidateDocument([]byte(`{
		"file_info": {"file_name": "a.json", "slide_count": 3},
		"gemini_analysis": {"client_name": "広研"}
	}`)))
	assert.NoError(t, ValidateDocument([]byte(`{
		"summary": {"all_prices": [500], "all_companies": ["A社"]}
	}`)))
}
