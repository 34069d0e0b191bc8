package batch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kshoda-lgtm/8CUBE-promotion/constants"
)

const validDeck = `{
	"slides": [
		{"pageElements": [{"shape": {"text": {"textElements": [
			{"textRun": {"content": "夏祭りキャンペーン\n"}},
			{"textRun": {"content": "クライアント：広研様\n"}},
			{"textRun": {"content": "エコバッグ 単価：¥300 数量：1,000個\n"}},
			{"textRun": {"content": "協力会社：大阪印刷株式会社 2024年7月\n"}}
		]}}}]}
	]
}`

func TestRunDecksAppendsResultsAndKnowledgeRows(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		writeJSON(t, dir, "deck1.json", validDeck),
		writeJSON(t, dir, "deck2.json", `{"slides": [`),
	}

	st := newFakeStore()
	res, err := (&Runner{Store: st}).RunDecks(context.Background(), files)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Processed)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, 2, res.Total)

	results := st.rows[constants.ResultsSheet]
	require.Len(t, results, 2, "every deck gets a results row")
	assert.Equal(t, 1, results[0][0])
	assert.Equal(t, constants.StatusLabelSuccess, results[0][2])
	assert.Equal(t, "広研", results[0][3])
	assert.Equal(t, "エコバッグ", results[0][4])
	assert.Equal(t, "300円", results[0][5])
	assert.Equal(t, "1000個", results[0][6])
	assert.Equal(t, 2, results[1][0])
	assert.Equal(t, constants.StatusLabelFailure, results[1][2])
	assert.Equal(t, "エラー", results[1][3])

	main := st.rows[constants.SetupSheet]
	require.Len(t, main, 1, "only successful extractions reach the knowledge sheet")
	require.Len(t, main[0], len(constants.SetupHeaders))
	assert.Equal(t, "システム管理者", main[0][1])
	assert.Equal(t, "広研", main[0][2])
	assert.Equal(t, "deck1.json", main[0][17])
	assert.Empty(t, st.rows[constants.MainSheet], "deck rows never touch the batch sheet")
}

func TestRunDecksScoresAndTags(t *testing.T) {
	dir := t.TempDir()
	files := []string{writeJSON(t, dir, "deck.json", validDeck)}

	st := newFakeStore()
	_, err := (&Runner{Store: st}).RunDecks(context.Background(), files)
	require.NoError(t, err)

	row := st.rows[constants.SetupSheet][0]
	// client 25 + prize 25 + price 20 + vendor 15 + quantity 10 + period 5
	assert.Equal(t, 100, row[19])
	tags, ok := row[18].(string)
	require.True(t, ok)
	assert.Contains(t, tags, "夏季")
	assert.Contains(t, tags, "中価格帯")
	assert.Contains(t, tags, "エコ")
}

func TestRunDecksAppendFailureDoesNotAbortRun(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		writeJSON(t, dir, "deck1.json", validDeck),
		writeJSON(t, dir, "deck2.json", validDeck),
	}

	st := newFakeStore()
	st.failAppend = true
	res, err := (&Runner{Store: st}).RunDecks(context.Background(), files)
	require.NoError(t, err, "a failing store append is a per-item error")
	assert.Equal(t, 0, res.Processed)
	assert.Equal(t, 2, res.Failed, "every deck is still attempted")
	assert.Equal(t, 2, res.Total)
}

func TestRunDecksKnowledgeRowFailureMarksItemFailed(t *testing.T) {
	dir := t.TempDir()
	files := []string{writeJSON(t, dir, "deck.json", validDeck)}

	st := newFakeStore()
	st.failSheets = map[string]bool{constants.SetupSheet: true}
	res, err := (&Runner{Store: st}).RunDecks(context.Background(), files)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Failed)
	assert.Len(t, st.rows[constants.ResultsSheet], 1, "the results row still lands")
}

func TestRunDecksEmptyInput(t *testing.T) {
	st := newFakeStore()
	res, err := (&Runner{Store: st}).RunDecks(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Total)
	assert.Empty(t, st.rows[constants.ResultsSheet])
}
