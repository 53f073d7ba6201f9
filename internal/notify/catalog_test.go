package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestCatalog_English(t *testing.T) {
	c := NewCatalog("en")
	assert.Equal(t, "Logged in!", c.Text(LoginSuccess))
	assert.Equal(t, "You must log in first.", c.Text(SessionRequired))
}

func TestCatalog_Indonesian(t *testing.T) {
	c := NewCatalog("id")
	assert.Equal(t, "Login berhasil!", c.Text(LoginSuccess))
	assert.Equal(t, "Harus login dulu", c.Text(SessionRequired))
	assert.Equal(t, "Nama item tidak boleh kosong!", c.Text(ItemBlankName))
}

func TestCatalog_RegionalIndonesianMatchesBase(t *testing.T) {
	c := NewCatalog("id-ID")
	assert.Equal(t, Indonesian, c.Locale())
	assert.Equal(t, "Gagal ubah status!", c.Text(ItemToggleFailed))
}

func TestCatalog_UnknownLocaleFallsBackToEnglish(t *testing.T) {
	for _, loc := range []string{"", "fr", "not a locale"} {
		c := NewCatalog(loc)
		assert.Equal(t, language.English, c.Locale(), loc)
		assert.Equal(t, "Item added!", c.Text(ItemCreated), loc)
	}
}

func TestCatalog_EveryKeyTranslated(t *testing.T) {
	en := messages[language.English]
	id := messages[Indonesian]
	assert.Equal(t, len(en), len(id))
	for key := range en {
		assert.NotEmpty(t, id[key], "missing Indonesian text for %s", key)
	}
}

func TestCatalog_Levels(t *testing.T) {
	c := NewCatalog("en")

	n := c.Warning(ChecklistBlankName)
	assert.Equal(t, Warning, n.Level)
	assert.Equal(t, ChecklistBlankName, n.Key)
	assert.Equal(t, "Checklist name must not be empty!", n.Text)

	assert.Equal(t, Error, c.Error(LoginFailed).Level)
	assert.Equal(t, Success, c.Success(LoginSuccess).Level)
	assert.Equal(t, Info, c.Info(LogoutSuccess).Level)
	assert.Equal(t, "warning", Warning.String())
}

func TestBuildCatalog_RegistersEveryBundle(t *testing.T) {
	b, err := buildCatalog(messages)
	require.NoError(t, err)

	langs := b.Languages()
	assert.Contains(t, langs, language.English)
	assert.Contains(t, langs, Indonesian)
}
