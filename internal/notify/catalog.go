package notify

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Indonesian is the locale the product was first written in.
var Indonesian = language.Indonesian

var supported = []language.Tag{language.English, Indonesian}

var messages = map[language.Tag]map[Key]string{
	language.English: {
		LoginSuccess:    "Logged in!",
		LoginFailed:     "Login failed! Check your username and password.",
		RegisterSuccess: "Registration successful! Please log in.",
		RegisterFailed:  "Registration failed! Check your input.",
		LogoutSuccess:   "Logged out.",
		LogoutFailed:    "Failed to log out.",
		SessionRequired: "You must log in first.",

		ChecklistLoadFailed:   "Failed to load checklists.",
		ChecklistCreated:      "Checklist added!",
		ChecklistCreateFailed: "Failed to add checklist.",
		ChecklistDeleted:      "Checklist deleted.",
		ChecklistDeleteFailed: "Failed to delete checklist.",
		ChecklistBlankName:    "Checklist name must not be empty!",

		ItemLoadFailed:   "Failed to load items!",
		ItemCreated:      "Item added!",
		ItemCreateFailed: "Failed to add item!",
		ItemToggleFailed: "Failed to change status!",
		ItemRenamed:      "Item renamed!",
		ItemRenameFailed: "Failed to rename item!",
		ItemDeleted:      "Item deleted!",
		ItemDeleteFailed: "Failed to delete item!",
		ItemBlankName:    "Item name must not be empty!",
	},
	Indonesian: {
		LoginSuccess:    "Login berhasil!",
		LoginFailed:     "Login gagal! Periksa username dan password.",
		RegisterSuccess: "Pendaftaran berhasil! Silakan login.",
		RegisterFailed:  "Gagal daftar! Coba periksa inputmu.",
		LogoutSuccess:   "Berhasil logout.",
		LogoutFailed:    "Gagal logout.",
		SessionRequired: "Harus login dulu",

		ChecklistLoadFailed:   "Gagal memuat checklist",
		ChecklistCreated:      "Checklist ditambahkan!",
		ChecklistCreateFailed: "Gagal menambahkan checklist",
		ChecklistDeleted:      "Checklist dihapus",
		ChecklistDeleteFailed: "Gagal menghapus checklist",
		ChecklistBlankName:    "Nama checklist tidak boleh kosong!",

		ItemLoadFailed:   "Gagal mengambil data item!",
		ItemCreated:      "Item berhasil ditambahkan!",
		ItemCreateFailed: "Gagal menambahkan item!",
		ItemToggleFailed: "Gagal ubah status!",
		ItemRenamed:      "Item berhasil diubah!",
		ItemRenameFailed: "Gagal mengubah item!",
		ItemDeleted:      "Item dihapus!",
		ItemDeleteFailed: "Gagal hapus item!",
		ItemBlankName:    "Nama item tidak boleh kosong!",
	},
}

var (
	builder = mustBuild(messages)
	matcher = language.NewMatcher(supported)
)

func buildCatalog(bundles map[language.Tag]map[Key]string) (*catalog.Builder, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, msgs := range bundles {
		for key, text := range msgs {
			if err := b.SetString(tag, string(key), text); err != nil {
				return nil, fmt.Errorf("register %s message %q: %w", tag, key, err)
			}
		}
	}
	return b, nil
}

// mustBuild panics when a bundled message cannot be registered.
func mustBuild(bundles map[language.Tag]map[Key]string) *catalog.Builder {
	b, err := buildCatalog(bundles)
	if err != nil {
		panic(err)
	}
	return b
}

// Catalog renders notifications in one locale.
type Catalog struct {
	tag     language.Tag
	printer *message.Printer
}

// NewCatalog returns a Catalog for locale ("en", "id", "id-ID", ...).
// Unknown or empty locales use English.
func NewCatalog(locale string) *Catalog {
	tag := MatchLocale(locale)
	return &Catalog{tag: tag, printer: message.NewPrinter(tag, message.Catalog(builder))}
}

// MatchLocale resolves locale to one of the supported tags.
func MatchLocale(locale string) language.Tag {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return language.English
	}
	parsed, err := language.Parse(locale)
	if err != nil {
		return language.English
	}
	_, idx, conf := matcher.Match(parsed)
	if conf == language.No {
		return language.English
	}
	return supported[idx]
}

// Locale returns the resolved language tag.
func (c *Catalog) Locale() language.Tag {
	return c.tag
}

// Text returns the message for key.
func (c *Catalog) Text(key Key) string {
	return c.printer.Sprintf(string(key))
}

func (c *Catalog) New(level Level, key Key) Notification {
	return Notification{Level: level, Key: key, Text: c.Text(key)}
}

func (c *Catalog) Success(key Key) Notification { return c.New(Success, key) }
func (c *Catalog) Info(key Key) Notification { return c.New(Info, key) }
func (c *Catalog) Warning(key Key) Notification { return c.New(Warning, key) }
func (c *Catalog) Error(key Key) Notification { return c.New(Error, key) }
