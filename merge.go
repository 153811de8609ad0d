// FILE: lixenwraith/envload/merge.go
package envload

// Merge folds source results into a new table. Results are applied in the
// order given and pairs within a result in line order, so a later source
// overrides an earlier one without moving the key.
func Merge(results ...SourceResult) *Table {
	table := NewTable()
	for _, result := range results {
		MergeInto(table, result)
	}
	return table
}

// MergeInto applies one source result to an existing table
func MergeInto(table *Table, result SourceResult) {
	for _, pair := range result.Pairs {
		table.Set(pair.Key, pair.Value, result.Source.Locator)
	}
}
