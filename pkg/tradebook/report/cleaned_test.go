package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestResolve(t *testing.T) {
	has := func(cols ...string) func(string) bool {
		set := make(map[string]bool)
		for _, c := range cols {
			set[c] = true
		}
		return func(name string) bool { return set[name] }
	}

	t.Run("copy rules need their column", func(t *testing.T) {
		rules := resolve(CleanedSchema, has("DATE"))
		require.Len(t, rules, len(CleanedSchema))
		assert.NotNil(t, rules[ColDate])
		assert.Nil(t, rules[ColPortCode])
		assert.Nil(t, rules[ColTotalValueINR])
		// derived fields always apply
		assert.NotNil(t, rules[ColSubCategory])
		assert.NotNil(t, rules[ColGrandTotalINR])
		assert.NotNil(t, rules[ColYear])
	})

	t.Run("unit falls back to unit of measure", func(t *testing.T) {
		rules := resolve(CleanedSchema, has("Unit of measure"))
		require.NotNil(t, rules[ColUnit])
		assert.Equal(t, "Unit of measure", rules[ColUnit].Raw)

		rules = resolve(CleanedSchema, has("UNIT", "Unit of measure"))
		assert.Equal(t, "UNIT", rules[ColUnit].Raw)
	})

	t.Run("model name prefers the input column", func(t *testing.T) {
		rules := resolve(CleanedSchema, has())
		assert.Equal(t, "", rules[ColModelName].Raw)

		rules = resolve(CleanedSchema, has("Model Name"))
		assert.Equal(t, "Model Name", rules[ColModelName].Raw)
	})
}

func TestCleanedFormulas(t *testing.T) {
	ref := rowRef{Row: 2, raw: func(name string) string {
		return "'Raw Data'!X2"
	}}

	assert.Equal(t, `IF('Raw Data'!X2="","",'Raw Data'!X2)`, copyRaw("DATE").Formula(ref))
	assert.Equal(t, `IF(ISNUMBER(O2),O2,0)+IF(ISNUMBER(R2),R2,0)`, grandTotal(ref))
	assert.Equal(t, `IF(A2="","",YEAR(A2))`, yearOf(ref))
	assert.Equal(t, `IFERROR(VLOOKUP(D2&"",'Lookup Tables'!$A:$B,2,FALSE),"Unknown")`, hsnDescription(ref))
	assert.Equal(t,
		`IFERROR(VLOOKUP(D2&"",'Lookup Tables'!$A:$C,3,FALSE),IF(ISNUMBER(SEARCH("STEEL",F2)),"Steel","Others"))`,
		mainCategory(ref))
	assert.Equal(t, `IFERROR(TRIM(MID(F2,SEARCH("MODEL",F2)+6,20)),"")`, modelFromDescription(ref))
	assert.Equal(t,
		`IFERROR(VALUE(MID(F2,SEARCH("QTY",F2)+4,`+
			`IFERROR(FIND(" ",F2,SEARCH("QTY",F2)+4)-(SEARCH("QTY",F2)+4),3))),"")`,
		quantityFromDescription(ref))
}

func TestSubCategoryOrder(t *testing.T) {
	got := subCategory(rowRef{Row: 3})
	want := `IF(ISNUMBER(SEARCH("scrubber",F3)),"Scrubber",` +
		`IF(ISNUMBER(SEARCH("container",F3)),"Container",` +
		`IF(ISNUMBER(SEARCH("basket",F3)),"Basket",` +
		`IF(ISNUMBER(SEARCH("lunch",F3)),"Lunch Box",` +
		`IF(ISNUMBER(SEARCH("cutlery",F3)),"Cutlery","Other")))))`
	assert.Equal(t, want, got)
}

func TestGrandTotalEvaluates(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		duty  interface{}
		want  string
	}{
		{"both numbers", 100, 50, "150"},
		{"text value", "n/a", 50, "50"},
		{"blank duty", 100, nil, "100"},
		{"both blank", nil, nil, "0"},
		{"both text", "n/a", "-", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := excelize.NewFile()
			defer f.Close()

			const sheet = "Sheet1"
			if tt.value != nil {
				require.NoError(t, f.SetCellValue(sheet, "O2", tt.value))
			}
			if tt.duty != nil {
				require.NoError(t, f.SetCellValue(sheet, "R2", tt.duty))
			}
			require.NoError(t, f.SetCellFormula(sheet, "S2", grandTotal(rowRef{Row: 2})))

			got, err := f.CalcCellValue(sheet, "S2")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
