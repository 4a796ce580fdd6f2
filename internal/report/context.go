package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/locvowork/scaninsight/pkg/exceltable"
)

// Sheet and table names of the report artifact.
const (
	SummarySheet  = "Summary"
	ScansSheet    = "Scans"
	ScansTable    = "AllScans"
	tableStartRow = 2 // column titles; merged group titles sit on row 1
)

const (
	summaryTabColor = "008000"
	scansTabColor   = "FFFF00"
)

// Context carries the per-run workbook state: the file, the shared
// style set, the language registry, and run identity. One Context is
// built per run and handed to each component, so there is no shared
// mutable state between runs.
type Context struct {
	File     *excelize.File
	Styles   *exceltable.StyleSet
	Registry *LanguageRegistry
	Customer string
	Company  string
	Author   string
}

// NewContext creates the workbook with its two sheets, tab colors, and
// document properties. The caller owns the file and must Close it.
func NewContext(customer, company, author string, registry *LanguageRegistry) (*Context, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("create summary sheet: %w", err)
	}
	if _, err := f.NewSheet(ScansSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("create scans sheet: %w", err)
	}

	summaryColor := summaryTabColor
	scansColor := scansTabColor
	if err := f.SetSheetProps(SummarySheet, &excelize.SheetPropsOptions{TabColorRGB: &summaryColor}); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetSheetProps(ScansSheet, &excelize.SheetPropsOptions{TabColorRGB: &scansColor}); err != nil {
		f.Close()
		return nil, err
	}

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:       fmt.Sprintf("%s CxSAST Usage", customer),
		Subject:     "Scan usage workbook",
		Creator:     author,
		Description: "Scan usage insight report",
	}); err != nil {
		f.Close()
		return nil, err
	}
	if company != "" {
		if err := f.SetAppProps(&excelize.AppProperties{Company: company}); err != nil {
			f.Close()
			return nil, err
		}
	}

	return &Context{
		File:     f,
		Styles:   exceltable.NewStyleSet(f),
		Registry: registry,
		Customer: customer,
		Company:  company,
		Author:   author,
	}, nil
}

// Close releases the workbook without writing it anywhere.
func (c *Context) Close() error {
	return c.File.Close()
}
