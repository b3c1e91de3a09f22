package i18n

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"text/template"
)

//go:embed locales/*.json
var embeddedLocales embed.FS

// catalog guarda as mensagens de um idioma; mensagens com {{...}} são
// compiladas na carga
type catalog struct {
	messages  map[string]string
	templates map[string]*template.Template
}

// Service resolve chaves de mensagem para textos localizados.
// Os catálogos são imutáveis após a carga.
type Service struct {
	catalogs        map[string]*catalog
	languages       []string
	defaultLanguage string
}

// NewDefaultService carrega os locales embutidos no binário
func NewDefaultService(defaultLang string) (*Service, error) {
	return NewServiceFS(embeddedLocales, "locales", defaultLang)
}

// NewService carrega os locales de um diretório do sistema de arquivos
func NewService(localesDir, defaultLang string) (*Service, error) {
	if _, err := os.Stat(localesDir); err != nil {
		return nil, fmt.Errorf("locales dir %s: %w", localesDir, err)
	}
	return NewServiceFS(os.DirFS(localesDir), ".", defaultLang)
}

// NewServiceFS carrega todos os arquivos <lang>.json de dir dentro de fsys
func NewServiceFS(fsys fs.FS, dir, defaultLang string) (*Service, error) {
	files, err := fs.Glob(fsys, path.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to find locale files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no locale files found in %s", dir)
	}

	s := &Service{
		catalogs:        make(map[string]*catalog, len(files)),
		defaultLanguage: defaultLang,
	}

	for _, file := range files {
		lang := strings.TrimSuffix(path.Base(file), ".json")
		cat, err := loadCatalog(fsys, file)
		if err != nil {
			return nil, err
		}
		s.catalogs[lang] = cat
		s.languages = append(s.languages, lang)
	}
	sort.Strings(s.languages)

	if _, ok := s.catalogs[defaultLang]; !ok {
		return nil, fmt.Errorf("default language %s not found in locale files", defaultLang)
	}

	return s, nil
}

func loadCatalog(fsys fs.FS, file string) (*catalog, error) {
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return nil, fmt.Errorf("failed to read locale file %s: %w", file, err)
	}

	var messages map[string]string
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse locale file %s: %w", file, err)
	}

	cat := &catalog{messages: messages, templates: map[string]*template.Template{}}
	for key, msg := range messages {
		if !strings.Contains(msg, "{{") {
			continue
		}
		tmpl, err := template.New(key).Parse(msg)
		if err != nil {
			return nil, fmt.Errorf("invalid template %q in %s: %w", key, file, err)
		}
		cat.templates[key] = tmpl
	}
	return cat, nil
}

// T traduz key para lang, caindo no idioma padrão e por fim na própria chave.
// params[0] alimenta placeholders como {{.Resource}}.
func (s *Service) T(lang, key string, params ...map[string]interface{}) string {
	cat, msg, ok := s.lookup(lang, key)
	if !ok {
		cat, msg, ok = s.lookup(s.defaultLanguage, key)
	}
	if !ok {
		return key
	}

	tmpl, isTemplate := cat.templates[key]
	if !isTemplate || len(params) == 0 {
		return msg
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params[0]); err != nil {
		return msg
	}
	return buf.String()
}

func (s *Service) lookup(lang, key string) (*catalog, string, bool) {
	cat, ok := s.catalogs[lang]
	if !ok {
		return nil, "", false
	}
	msg, ok := cat.messages[key]
	return cat, msg, ok
}

// Keys retorna as chaves definidas para um idioma, ordenadas
func (s *Service) Keys(lang string) []string {
	cat, ok := s.catalogs[lang]
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(cat.messages))
	for k := range cat.messages {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Missing lista as chaves do idioma padrão ausentes em lang
func (s *Service) Missing(lang string) []string {
	cat, ok := s.catalogs[lang]
	if !ok {
		return s.Keys(s.defaultLanguage)
	}
	var missing []string
	for _, k := range s.Keys(s.defaultLanguage) {
		if _, ok := cat.messages[k]; !ok {
			missing = append(missing, k)
		}
	}
	return missing
}

// GetDefaultLanguage retorna o idioma padrão configurado
func (s *Service) GetDefaultLanguage() string {
	return s.defaultLanguage
}

// GetSupportedLanguages retorna os idiomas carregados, ordenados
func (s *Service) GetSupportedLanguages() []string {
	return append([]string(nil), s.languages...)
}

func (s *Service) IsLanguageSupported(lang string) bool {
	_, ok := s.catalogs[lang]
	return ok
}
