package state

import (
	"uiscope/internal/core/errors"
	"uiscope/internal/engine/report"
	"uiscope/internal/engine/source"
)

// Analyze traces the first exported component in the document. A file with no
// React-shaped component is an error, not an empty report.
func Analyze(doc *source.Document) (*Report, error) {
	comp := findComponent(doc)
	if comp == nil {
		err := errors.New(errors.CodeNoComponent, "no React component found in file")
		err = errors.AddContext(err, errors.CtxPath, doc.Path)
		err = errors.AddContext(err, errors.CtxAnalyzer, "state")
		return nil, err
	}

	states := collectHooks(doc, comp.fn)
	props := collectProps(doc, comp)
	corr := correlate(doc, comp, states, props)

	rep := &Report{
		File:            doc.Path,
		Component:       comp.name,
		States:          states,
		ReceivedProps:   props,
		PassedDownProps: []PassedDownProp{},
		Issues:          evaluateRules(props, corr),
	}
	if rep.States == nil {
		rep.States = []ComponentState{}
	}
	if rep.ReceivedProps == nil {
		rep.ReceivedProps = []ReceivedProp{}
	}
	if rep.Issues == nil {
		rep.Issues = []report.Issue{}
	}
	for _, passed := range corr.passed {
		rep.PassedDownProps = append(rep.PassedDownProps, PassedDownProp{
			PropName:       passed.PropName,
			ToComponent:    passed.ToComponent,
			OriginalSource: passed.Source,
		})
	}
	return rep, nil
}
