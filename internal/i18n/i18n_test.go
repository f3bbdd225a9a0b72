package i18n

import (
	"strings"
	"testing"
)

func withLanguage(t *testing.T, lang Language) {
	t.Helper()
	prev := GetLanguage()
	SetLanguage(lang)
	t.Cleanup(func() { SetLanguage(prev) })
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		code string
		want Language
		ok   bool
	}{
		{"en_US.UTF-8", LangEnglish, true},
		{"zh_CN.UTF-8", LangChinese, true},
		{"zh-TW", LangChinese, true},
		{"pt_BR.UTF-8", LangPortuguese, true},
		{" PT ", LangPortuguese, true},
		{"de_DE", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseLanguage(tt.code)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseLanguage(%q) = %q, %v; want %q, %v", tt.code, got, ok, tt.want, tt.ok)
		}
	}
}

func TestTranslate(t *testing.T) {
	withLanguage(t, LangEnglish)
	if got := T(ErrExpectedToken, 3, 7, ";", "IDENT"); got != "line 3:7: expected ;, got IDENT" {
		t.Errorf("en = %q", got)
	}

	SetLanguage(LangPortuguese)
	if got := T(ErrRedeclared, "x"); got != "'x' já declarado neste escopo" {
		t.Errorf("pt = %q", got)
	}

	SetLanguage(LangChinese)
	if got := T(ErrUndefined, "y"); !strings.Contains(got, "'y'") {
		t.Errorf("zh = %q", got)
	}
	if got := T(ErrAssignType, "boolean", "x", "integer"); got != "不能将 boolean 赋值给类型为 integer 的 'x'" {
		t.Errorf("zh reordered = %q", got)
	}
}

func TestUnknownKey(t *testing.T) {
	withLanguage(t, LangPortuguese)
	if got := T("no.such.key"); got != "no.such.key" {
		t.Errorf("T(unknown) = %q", got)
	}
}

func TestCataloguesComplete(t *testing.T) {
	for name, catalogue := range map[string]map[string]string{"zh": zhMessages, "pt": ptMessages} {
		for key := range enMessages {
			if _, ok := catalogue[key]; !ok {
				t.Errorf("%s catalogue missing %s", name, key)
			}
		}
	}
}
