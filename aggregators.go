package sqlbuilder

import "fmt"

type functionCall func(string) string

type aggregators struct {
	Min   functionCall
	Max   functionCall
	Count functionCall
	Avg   functionCall
	Sum   functionCall
}

// Aggregators format a column into an aggregate call, for use as a select
// column name or a having expression: Col(Aggregators.Count("id")).
var Aggregators = &aggregators{
	Min:   makeFunctionFormatter("MIN"),
	Max:   makeFunctionFormatter("MAX"),
	Count: makeFunctionFormatter("COUNT"),
	Avg:   makeFunctionFormatter("AVG"),
	Sum:   makeFunctionFormatter("SUM"),
}

func makeFunctionFormatter(function string) functionCall {
	return func(column string) string {
		return fmt.Sprintf("%s(%s)", function, column)
	}
}
