package htmlutil

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

const similarPage = `<html><head>
<script type="text/javascript">
its.serverData = {"pageData": {"customersAlsoBoughtApps":[361309726,361285480,529479190]}};
</script>
</head><body><div id="content"></div></body></html>`

func TestExtractScriptArray(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(similarPage))
	require.NoError(t, err)

	payload, found, err := ExtractScriptArray(doc, "customersAlsoBoughtApps")
	require.NoError(t, err)
	require.True(t, found)

	var ids []int64
	err = json.Unmarshal(payload, &ids)
	require.NoError(t, err)
	require.Equal(t, []int64{361309726, 361285480, 529479190}, ids)
}

func TestExtractScriptArrayMissingKey(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<html><head><script>var nothing = 1;</script></head></html>`,
	))
	require.NoError(t, err)

	_, found, err := ExtractScriptArray(doc, "customersAlsoBoughtApps")
	require.NoError(t, err)
	require.False(t, found)
}

func TestExtractScriptArrayMalformedPayload(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<html><head><script>{"customersAlsoBoughtApps": [1,,2]}</script></head></html>`,
	))
	require.NoError(t, err)

	_, found, err := ExtractScriptArray(doc, "customersAlsoBoughtApps")
	require.True(t, found)
	require.Error(t, err)
}
