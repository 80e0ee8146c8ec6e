// Package datagrid provides a terminal data grid whose header and rows are
// generated from a runtime-mutable column collection.
//
// Columns may nest into groups. Each column has a width policy (auto, a
// fixed cell count or a star weight) and the grid keeps every row aligned
// with the header: auto columns share one width across rows, star columns
// follow the width the header arranged them to.
//
//	g, err := datagrid.New(
//	    datagrid.WithColumns(
//	        datagrid.NewColumn(datagrid.WithHeader("Name"), datagrid.WithCellTemplate(datagrid.Field("Name"))),
//	        datagrid.NewColumn(datagrid.WithHeader("Notes"), datagrid.WithWidth(datagrid.Star(1)),
//	            datagrid.WithCellTemplate(datagrid.Field("Notes"))),
//	    ),
//	    datagrid.WithItems(rows...),
//	)
//	for _, line := range g.Render(80, 24) {
//	    fmt.Println(line)
//	}
package datagrid
