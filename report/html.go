// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

// Package report renders shard summaries as a standalone HTML page.
package report

import (
	_ "embed"
	"encoding/json"
	"html/template"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/tidwall/gjson"
)

//go:embed template.html
var pageTemplate string

// Shard is the summary of one shard as produced by subscribe-to-shard.
type Shard struct {
	ShardID string
	Records int
	Results map[string]interface{}
}

type keyRow struct {
	PartitionKey string
	Count        int64
}

type shardRow struct {
	ShardID     string
	Records     int
	PeakRecords string
	PeakBytes   string
	Usage       float64
	Keys        []keyRow
}

// HTMLReporter writes a report to a file.
type HTMLReporter struct {
	fname string
	now   func() time.Time
}

func NewHTMLReporter(fname string) *HTMLReporter {
	return &HTMLReporter{
		fname: fname,
		now:   time.Now,
	}
}

// Report writes the page for stream. start is the beginning of the
// summarised window.
func (rp *HTMLReporter) Report(stream string, start time.Time, shards []Shard) error {
	file, err := os.OpenFile(rp.fname, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer file.Close()
	if err := rp.write(file, stream, start, shards); err != nil {
		return err
	}
	return file.Sync()
}

func (rp *HTMLReporter) write(w io.Writer, stream string, start time.Time, shards []Shard) error {
	rows := make([]shardRow, 0, len(shards))
	for _, s := range shards {
		row, err := newRow(s)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}
	raw, err := json.Marshal(shards)
	if err != nil {
		return err
	}
	t, err := template.New("report").Funcs(template.FuncMap{
		"percent": formatPercent,
	}).Parse(pageTemplate)
	if err != nil {
		return err
	}
	return t.Execute(w, map[string]interface{}{
		"Stream": stream,
		"From":   start.UTC().Format(time.RFC3339),
		"Date":   rp.now().UTC().Format(time.RFC3339),
		"Shards": rows,
		"Report": template.JS(raw),
	})
}

// newRow reads the aggregator results through their JSON form, so any
// aggregator with matching field names is rendered.
func newRow(s Shard) (shardRow, error) {
	row := shardRow{ShardID: s.ShardID, Records: s.Records}
	raw, err := json.Marshal(s.Results)
	if err != nil {
		return row, err
	}
	results := gjson.ParseBytes(raw)
	row.PeakRecords = results.Get("ingress-count.peak").String()
	row.PeakBytes = results.Get("ingress-bytes.peak").String()
	row.Usage = results.Get("ingress-count.usage").Float()
	if u := results.Get("ingress-bytes.usage").Float(); u > row.Usage {
		row.Usage = u
	}
	results.Get("partition-keys").ForEach(func(_, v gjson.Result) bool {
		row.Keys = append(row.Keys, keyRow{
			PartitionKey: v.Get("partitionKey").String(),
			Count:        v.Get("count").Int(),
		})
		return true
	})
	return row, nil
}

func formatPercent(f float64) string {
	return strconv.FormatFloat(f*100, 'f', 1, 64) + "%"
}
