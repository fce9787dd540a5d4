package fuzzlog

import "golang.org/x/exp/slices"

// Outcomes maps test case ids to the descriptions recorded against them.
// Ids are kept in the order their first description was recorded.
type Outcomes struct {
	ids  []TestCaseID
	byID map[TestCaseID][]string
}

func (o *Outcomes) add(id TestCaseID, description string) {
	if o.byID == nil {
		o.byID = make(map[TestCaseID][]string)
	}
	descriptions, found := o.byID[id]
	if !found {
		o.ids = append(o.ids, id)
	}
	o.byID[id] = append(descriptions, description)
}

// Len returns the number of distinct test cases.
func (o Outcomes) Len() int {
	return len(o.ids)
}

// Has reports whether at least one description was recorded for id.
func (o Outcomes) Has(id TestCaseID) bool {
	_, found := o.byID[id]
	return found
}

// TestCases returns the test case ids in first-recorded order.
func (o Outcomes) TestCases() []TestCaseID {
	return slices.Clone(o.ids)
}

// Descriptions returns the descriptions recorded for id, in call order.
func (o Outcomes) Descriptions(id TestCaseID) []string {
	return slices.Clone(o.byID[id])
}

func (o Outcomes) clone() Outcomes {
	c := Outcomes{
		ids:  slices.Clone(o.ids),
		byID: make(map[TestCaseID][]string, len(o.byID)),
	}
	for id, descriptions := range o.byID {
		c.byID[id] = slices.Clone(descriptions)
	}
	return c
}
