package main

import (
	"fmt"
	"strings"

	"uiscope/internal/engine/report"
)

// formatResults renders the one-shot CLI summary.
func formatResults(results []analysisResult) string {
	var b strings.Builder

	byFile := map[string][]analysisResult{}
	var order []string
	for _, result := range results {
		if _, seen := byFile[result.File]; !seen {
			order = append(order, result.File)
		}
		byFile[result.File] = append(byFile[result.File], result)
	}

	totalIssues := 0
	for _, file := range order {
		b.WriteString(titleStyle(file) + "\n")
		for _, result := range byFile[file] {
			if result.Err != "" {
				b.WriteString(fmt.Sprintf("  %s %s\n", errorStyle.Render(result.Analyzer+":"), result.Err))
				continue
			}
			if len(result.Issues) == 0 {
				b.WriteString(fmt.Sprintf("  %s %s\n", result.Analyzer+":", successStyle.Render("clean")))
				continue
			}
			b.WriteString(fmt.Sprintf("  %s\n", result.Analyzer+":"))
			for _, issue := range result.Issues {
				totalIssues++
				b.WriteString(fmt.Sprintf("    %s %s: %s\n", severityBadge(issue.Severity), issue.Location, issue.Description))
				if issue.Suggestion != "" {
					b.WriteString(statusStyle.Render(fmt.Sprintf("      hint: %s", issue.Suggestion)) + "\n")
				}
			}
		}
		b.WriteString("\n")
	}

	if totalIssues == 0 {
		b.WriteString(successStyle.Render("✅ No structural issues") + "\n")
	} else {
		b.WriteString(warningStyle.Render(fmt.Sprintf("⚠️  %d issues found", totalIssues)) + "\n")
	}
	return b.String()
}

func severityBadge(severity report.Severity) string {
	switch severity {
	case report.SeverityError:
		return errorStyle.Render("[error]")
	case report.SeverityWarning:
		return warningStyle.Render("[warn]")
	default:
		return statusStyle.Render("[info]")
	}
}
