package report

import (
	"fmt"
)

// Cleaned Data column positions (0-based).
const (
	ColDate = iota
	ColPortCode
	ColIEC
	ColHSCode
	ColHSNDescription
	ColGoodsDescription
	ColMainCategory
	ColSubCategory
	ColModelName
	ColModelNumber
	ColCapacity
	ColQuantity
	ColUnit
	ColUnitPriceINR
	ColTotalValueINR
	ColUnitPriceUSD
	ColTotalValueUSD
	ColDutyPaidINR
	ColGrandTotalINR
	ColYear
)

// Keyword maps a description substring to a sub-category label.
type Keyword struct {
	Match string
	Label string
}

// SubCategories is searched in order; the first match wins.
var SubCategories = []Keyword{
	{Match: "scrubber", Label: "Scrubber"},
	{Match: "container", Label: "Container"},
	{Match: "basket", Label: "Basket"},
	{Match: "lunch", Label: "Lunch Box"},
	{Match: "cutlery", Label: "Cutlery"},
}

// DefaultSubCategory labels descriptions matching no keyword.
const DefaultSubCategory = "Other"

// Rule yields the formula of one cleaned cell. A rule with a Raw column
// applies only when the input has a column of exactly that name.
type Rule struct {
	Raw     string
	Formula func(row rowRef) string
}

// Field is one Cleaned Data column with its ordered resolution rules.
// When no rule applies the cell is left blank.
type Field struct {
	Header string
	Rules  []Rule
	Style  fieldStyle
}

type fieldStyle int

const (
	styleNone fieldStyle = iota
	styleDate
	styleAmount
)

// rowRef addresses one cleaned row. Raw Data and Cleaned Data share the
// header row, so both sheets use the same row number.
type rowRef struct {
	Row int
	raw func(name string) string
}

// Col returns the address of a Cleaned Data column in this row.
func (r rowRef) Col(col int) string {
	return Cell(col, r.Row)
}

// Raw returns the Raw Data address of the named input column in this row.
func (r rowRef) Raw(name string) string {
	return r.raw(name)
}

// CleanedSchema is the ordered Cleaned Data layout.
var CleanedSchema = []Field{
	{Header: "Date", Rules: []Rule{copyRaw("DATE")}, Style: styleDate},
	{Header: "Port Code", Rules: []Rule{copyRaw("PORT CODE")}},
	{Header: "IEC", Rules: []Rule{copyRaw("IEC")}},
	{Header: "HS Code", Rules: []Rule{copyRaw("HS CODE")}},
	{Header: "HSN Description", Rules: []Rule{derived(hsnDescription)}},
	{Header: "Goods Description", Rules: []Rule{copyRaw("GOODS DESCRIPTION")}},
	{Header: "Main Category", Rules: []Rule{derived(mainCategory)}},
	{Header: "Sub Category", Rules: []Rule{derived(subCategory)}},
	{Header: "Model Name", Rules: []Rule{
		{Raw: "Model Name", Formula: func(r rowRef) string {
			raw := r.Raw("Model Name")
			return fmt.Sprintf(`IF(%s<>"",%s,%s)`, raw, raw, modelFromDescription(r))
		}},
		derived(modelFromDescription),
	}},
	{Header: "Model Number", Rules: []Rule{copyRaw("Model Number")}},
	{Header: "Capacity", Rules: []Rule{copyRaw("Capacity")}},
	{Header: "Quantity", Rules: []Rule{
		{Raw: "QUANTITY", Formula: func(r rowRef) string {
			raw := r.Raw("QUANTITY")
			return fmt.Sprintf(`IF(N(%s)<>0,%s,%s)`, raw, raw, quantityFromDescription(r))
		}},
		derived(quantityFromDescription),
	}},
	{Header: "Unit", Rules: []Rule{copyRaw("UNIT"), copyRaw("Unit of measure")}},
	{Header: "Unit Price INR", Rules: []Rule{copyRaw("UNIT PRICE_INR")}, Style: styleAmount},
	{Header: "Total Value INR", Rules: []Rule{copyRaw("TOTAL VALUE_INR")}, Style: styleAmount},
	{Header: "Unit Price USD", Rules: []Rule{copyRaw("UNIT PRICE_USD")}, Style: styleAmount},
	{Header: "Total Value USD", Rules: []Rule{copyRaw("TOTAL VALUE_USD")}, Style: styleAmount},
	{Header: "Duty Paid INR", Rules: []Rule{copyRaw("DUTY PAID_INR")}, Style: styleAmount},
	{Header: "Grand Total INR", Rules: []Rule{derived(grandTotal)}, Style: styleAmount},
	{Header: "Year", Rules: []Rule{derived(yearOf)}},
}

// CleanedHeaders returns the Cleaned Data header labels.
func CleanedHeaders() []string {
	headers := make([]string, len(CleanedSchema))
	for i, f := range CleanedSchema {
		headers[i] = f.Header
	}
	return headers
}

func copyRaw(name string) Rule {
	return Rule{Raw: name, Formula: func(r rowRef) string {
		raw := r.Raw(name)
		return fmt.Sprintf(`IF(%s="","",%s)`, raw, raw)
	}}
}

func derived(fn func(rowRef) string) Rule {
	return Rule{Formula: fn}
}

// lookupColumn fetches column n of the lookup sheet for this row's HS code.
// The code is coerced to text so numeric codes match the text keys.
func lookupColumn(r rowRef, n int, fallback string) string {
	return fmt.Sprintf(`IFERROR(VLOOKUP(%s&"",%s!$A:$%s,%d,FALSE),%s)`,
		r.Col(ColHSCode), QuoteSheet(SheetLookup), ColumnName(n-1), n, fallback)
}

func hsnDescription(r rowRef) string {
	return lookupColumn(r, 2, StringLiteral("Unknown"))
}

func mainCategory(r rowRef) string {
	desc := r.Col(ColGoodsDescription)
	return lookupColumn(r, 3, fmt.Sprintf(`IF(ISNUMBER(SEARCH("STEEL",%s)),"Steel","Others")`, desc))
}

// subCategory nests one IF per keyword so the first listed match wins.
func subCategory(r rowRef) string {
	desc := r.Col(ColGoodsDescription)
	expr := StringLiteral(DefaultSubCategory)
	for i := len(SubCategories) - 1; i >= 0; i-- {
		kw := SubCategories[i]
		expr = fmt.Sprintf(`IF(ISNUMBER(SEARCH(%s,%s)),%s,%s)`,
			StringLiteral(kw.Match), desc, StringLiteral(kw.Label), expr)
	}
	return expr
}

// modelFromDescription takes the 20 characters after a "MODEL:" marker.
func modelFromDescription(r rowRef) string {
	desc := r.Col(ColGoodsDescription)
	return fmt.Sprintf(`IFERROR(TRIM(MID(%s,SEARCH("MODEL",%s)+6,20)),"")`, desc, desc)
}

// quantityFromDescription reads the number following a "QTY" marker and
// its separator, up to the next space (three characters if none).
func quantityFromDescription(r rowRef) string {
	desc := r.Col(ColGoodsDescription)
	start := fmt.Sprintf(`SEARCH("QTY",%s)+4`, desc)
	return fmt.Sprintf(`IFERROR(VALUE(MID(%s,%s,IFERROR(FIND(" ",%s,%s)-(%s),3))),"")`,
		desc, start, desc, start, start)
}

// grandTotal adds total value and duty, counting non-numbers as zero.
func grandTotal(r rowRef) string {
	value, duty := r.Col(ColTotalValueINR), r.Col(ColDutyPaidINR)
	return fmt.Sprintf(`IF(ISNUMBER(%s),%s,0)+IF(ISNUMBER(%s),%s,0)`, value, value, duty, duty)
}

func yearOf(r rowRef) string {
	date := r.Col(ColDate)
	return fmt.Sprintf(`IF(%s="","",YEAR(%s))`, date, date)
}

// resolve picks the first applicable rule of every field for the given
// input columns. A nil entry means the field stays blank.
func resolve(schema []Field, has func(string) bool) []*Rule {
	resolved := make([]*Rule, len(schema))
	for i := range schema {
		for j := range schema[i].Rules {
			rule := &schema[i].Rules[j]
			if rule.Raw == "" || has(rule.Raw) {
				resolved[i] = rule
				break
			}
		}
	}
	return resolved
}

// writeCleaned emits one formula row per input record.
func (b *builder) writeCleaned(sheet string) error {
	if err := b.writeHeader(sheet, CleanedHeaders()); err != nil {
		return err
	}

	rules := resolve(CleanedSchema, b.table.Has)
	rawRef := func(row int) func(string) string {
		return func(name string) string {
			return SheetCell(SheetRaw, b.table.Index(name), row)
		}
	}

	n := b.table.Len()
	for i := 0; i < n; i++ {
		ref := rowRef{Row: i + 2, raw: rawRef(i + 2)}
		for col, rule := range rules {
			if rule == nil {
				continue
			}
			if err := b.f.SetCellFormula(sheet, Cell(col, ref.Row), rule.Formula(ref)); err != nil {
				return err
			}
		}
	}

	last := n + 1
	for col, field := range CleanedSchema {
		var err error
		switch field.Style {
		case styleDate:
			err = b.styleRange(sheet, col, 2, last, b.styles.date)
		case styleAmount:
			err = b.styleRange(sheet, col, 2, last, b.styles.amount)
		}
		if err != nil {
			return err
		}
	}

	b.rows[sheet] = last
	return nil
}
