package staff

import (
	"strings"
	"testing"

	"github.com/PancyStudios/PancySuggestGo/pkg/models"
)

func TestRenderPendingSnippets(t *testing.T) {
	long := strings.Repeat("a", 200)
	records := []models.SuggestionRecord{
		{ID: 1, AuthorID: "100", Text: "corta"},
		{ID: 2, AuthorID: "200", Text: long},
	}

	out := RenderPending(records)

	if !strings.Contains(out, "**#1** <@100>: corta") {
		t.Errorf("RenderPending() = %q, falta la entrada corta", out)
	}
	if strings.Contains(out, long) {
		t.Error("RenderPending() no recortó el texto largo")
	}
	if !strings.Contains(out, strings.Repeat("a", snippetLen)+"…") {
		t.Error("RenderPending() no añadió la elipsis al texto recortado")
	}
}

func TestRenderPendingCap(t *testing.T) {
	records := make([]models.SuggestionRecord, 0, listCap+3)
	for i := 1; i <= listCap+3; i++ {
		records = append(records, models.SuggestionRecord{ID: int64(i), AuthorID: "1", Text: "x"})
	}

	out := RenderPending(records)

	if strings.Contains(out, "**#11**") {
		t.Error("RenderPending() mostró entradas por encima del límite")
	}
	if !strings.Contains(out, "… y 3 más.") {
		t.Errorf("RenderPending() = %q, falta el resumen de entradas omitidas", out)
	}
}

func TestSnippetRespectsRunes(t *testing.T) {
	text := strings.Repeat("ñ", snippetLen+10)
	got := snippet(text)
	if runes := []rune(got); len(runes) != snippetLen+1 {
		t.Errorf("snippet() devolvió %d runas, se esperaban %d", len(runes), snippetLen+1)
	}
}
