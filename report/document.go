package report

import (
	"fmt"
	"strings"

	"github.com/bitrise-steplib/steps-jest-html-report/models"
	"github.com/bitrise-steplib/steps-jest-html-report/sorting"
	"golang.org/x/net/html"
)

// BuildDocument assembles the report tree of run, embedding stylesheet.
// The returned node is a complete document owned by the caller.
func BuildDocument(run *models.TestRun, stylesheet string, opts Options) (*html.Node, error) {
	if run == nil {
		return nil, &Error{Kind: MissingTestData, Err: errMissingTestData}
	}

	pageTitle := opts.PageTitle
	if pageTitle == "" {
		pageTitle = DefaultPageTitle
	}

	doc, body := newDocument(pageTitle, stylesheet)

	// Header
	header := appendElement(body, "header")
	appendTextElement(header, "h1", pageTitle, id("title"))
	if opts.Logo != "" {
		appendElement(header, "img", id("logo"), attr("src", opts.Logo))
	}

	// Metadata
	metadata := appendElement(body, "div", id("metadata-container"))
	appendTextElement(metadata, "div", "Start: "+formatTimestamp(run.StartTime, opts.dateFormat()), id("timestamp"))
	appendTextElement(metadata, "div", fmt.Sprintf("%d testsuites -- %d passed / %d failed / %d pending",
		run.NumTotalTestSuites, run.NumPassedTestSuites, run.NumFailedTestSuites, run.NumPendingTestSuites), class("summary"))
	appendTextElement(metadata, "div", fmt.Sprintf("%d tests -- %d passed / %d failed / %d pending",
		run.NumTotalTests, run.NumPassedTests, run.NumFailedTests, run.NumPendingTests), class("summary"))

	// Suites
	for _, suite := range sorting.Sort(run.TestResults, opts.Sort) {
		renderSuite(body, suite, opts)
	}

	return doc, nil
}

// newDocument returns the document root and its <body>.
func newDocument(pageTitle, stylesheet string) (*html.Node, *html.Node) {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := appendElement(doc, "html")
	head := appendElement(root, "head")
	appendElement(head, "meta", attr("charset", "utf-8"))
	appendTextElement(head, "title", pageTitle)
	appendTextElement(head, "style", stylesheet, attr("type", "text/css"))

	return doc, appendElement(root, "body")
}

// Render serializes a document built by BuildDocument.
func Render(doc *html.Node) (string, error) {
	var sb strings.Builder
	if err := html.Render(&sb, doc); err != nil {
		return "", fmt.Errorf("failed to serialize report: %w", err)
	}
	return sb.String(), nil
}
