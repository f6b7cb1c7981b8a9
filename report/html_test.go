package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/awslabs/shkin/aggregator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportRendersShards(t *testing.T) {
	// Arrange
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	rp := NewHTMLReporter("")
	rp.now = func() time.Time { return start.Add(time.Hour) }
	shards := []Shard{{
		ShardID: "shardId-000000000001",
		Records: 3,
		Results: map[string]interface{}{
			"ingress-count": aggregator.Stats{Peak: "2,000 records/s", Usage: 2},
			"ingress-bytes": aggregator.Stats{Peak: "12 KiB/s", Usage: 0.25},
			"partition-keys": []aggregator.KeyCount{
				{PartitionKey: "<tenant-a>", Count: 2},
				{PartitionKey: "tenant-b", Count: 1},
			},
		},
	}}
	var buf bytes.Buffer

	// Act
	err := rp.write(&buf, "orders", start, shards)

	// Assert
	require.NoError(t, err)
	page := buf.String()
	assert.Contains(t, page, "<h1>orders</h1>")
	assert.Contains(t, page, "Records since 2024-05-01T12:00:00Z, generated 2024-05-01T13:00:00Z.")
	assert.Contains(t, page, "2,000 records/s")
	assert.Contains(t, page, `class="hot">200.0%`)
	assert.Contains(t, page, "<li>&lt;tenant-a&gt; (2)</li>")
	assert.NotContains(t, page, "<tenant-a>")
}

func TestReportWritesFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "report.html")

	err := NewHTMLReporter(fname).Report("orders", time.Now(), []Shard{{ShardID: "shardId-000000000000"}})

	require.NoError(t, err)
	b, err := os.ReadFile(fname)
	require.NoError(t, err)
	assert.Contains(t, string(b), "shardId-000000000000")
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "12.5%", formatPercent(0.125))
	assert.Equal(t, "0.0%", formatPercent(0))
}
