// Copyright 2026 The OIP Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pipeline

import (
	"math"

	"github.com/PrytkovD/oip/builder"
	"github.com/PrytkovD/oip/sql"
	"github.com/PrytkovD/oip/sql/aggregation"
	"github.com/PrytkovD/oip/sql/expression"
	"github.com/PrytkovD/oip/sql/plan"
)

// ComputeTFIDF scores every (page_url, token) pair in occurrences (one
// row per raw token occurrence, produced by Crawler into the
// occurrence table) by TF-IDF, entirely through the relational query
// API: a term-frequency grouping, a document-frequency grouping over
// that, a distinct-page count, and a final join computing
// tf * log(totalDocs / df).
func ComputeTFIDF(occurrences sql.RecordSet) (sql.RecordSet, error) {
	pageURL := expression.NewColumn("page_url", sql.StringType)
	token := expression.NewColumn("token", sql.StringType)

	termFreqGB := plan.NewGroupBy(occurrences, []sql.Expression{pageURL, token})
	termFreq, err := termFreqGB.Aggregate([]sql.Aggregation{
		aggregation.NewCount(nil).Alias("tf").(sql.Aggregation),
	})
	if err != nil {
		return nil, err
	}

	distinctPagesGB := plan.NewGroupBy(occurrences, []sql.Expression{pageURL})
	distinctPages, err := distinctPagesGB.Aggregate([]sql.Aggregation{
		aggregation.NewCount(nil).Alias("c").(sql.Aggregation),
	})
	if err != nil {
		return nil, err
	}
	distinctPageRows, err := sql.Materialize(distinctPages)
	if err != nil {
		return nil, err
	}
	totalDocs := int64(len(distinctPageRows))

	// docFreqToken reads the same "token" field out of termFreq as
	// the join key, but is aliased so the joined schema doesn't carry
	// two columns both displaying as "token" - the join's own output
	// record resolves it back by its original (unaliased) name.
	docFreqToken := expression.NewColumn("token", sql.StringType).Alias("doc_freq_token")
	docFreqGB := plan.NewGroupBy(termFreq, []sql.Expression{docFreqToken})
	docFreq, err := docFreqGB.Aggregate([]sql.Aggregation{
		aggregation.NewCount(nil).Alias("df").(sql.Aggregation),
	})
	if err != nil {
		return nil, err
	}

	tf := expression.NewColumn("tf", sql.IntType)
	df := expression.NewColumn("df", sql.IntType)
	tfidf := expression.NewFunc("tfidf", func(args []sql.Value) (sql.Value, error) {
		tfVal, err := sql.Coerce(sql.IntType, args[0])
		if err != nil {
			return nil, err
		}
		dfVal, err := sql.Coerce(sql.IntType, args[1])
		if err != nil {
			return nil, err
		}
		d := dfVal.(int64)
		if d == 0 {
			return 0.0, nil
		}
		return float64(tfVal.(int64)) * math.Log(float64(totalDocs)/float64(d)), nil
	}, tf, df).Alias("tfidf")

	return builder.SelectFrom(termFreq).
		Join(docFreq, token, docFreqToken, plan.InnerJoin).
		Columns(pageURL, token, tf, df, tfidf).
		Execute()
}
