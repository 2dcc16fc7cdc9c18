package cli

import (
	"text/template"

	"github.com/iudanet/articlekeeper/internal/client/render"
)

var funcs = template.FuncMap{
	"body":    render.Body,
	"excerpt": render.Excerpt,
	"tags":    render.Tags,
	"inc":     func(i int) int { return i + 1 },
}

func mustParse(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(funcs).Parse(text))
}

var (
	itemList    = mustParse("list", itemListTemplate)
	itemView    = mustParse("item", itemTemplate)
	tagsView    = mustParse("tags", tagsTemplate)
	profileView = mustParse("profile", profileTemplate)
	statusView  = mustParse("status", statusTemplate)
	usage       = mustParse("usage", usageTemplate)
)

const itemListTemplate = `
=== {{ .Heading }} ===
{{- with .Notice }}
{{ . }}
{{- end }}
{{ if eq (len .Items) 0 }}
{{ .Empty }}
{{ else }}
Found {{ len .Items }} article(s):
{{ range $i, $item := .Items }}
{{ inc $i }}. {{ $item.Title }}{{ if $item.Liked }} ♥{{ end }}
   ID:   {{ $item.ID }}
   Tags: {{ tags $item.Tags }}
   {{- if $item.PublishedAt }}
   Published: {{ $item.PublishedAt }}
   {{- else if $item.UpdatedAt }}
   Updated:   {{ $item.UpdatedAt }}
   {{- end }}
   {{- with excerpt $item.Body 72 }}
   {{ . }}
   {{- end }}
{{ end }}
{{- end }}
`

const itemTemplate = `
=== {{ if .IsDraft }}Draft{{ else }}Article{{ end }} Details ===

Title:     {{ .Title }}
ID:        {{ .ID }}
Status:    {{ .State }}
Tags:      {{ tags .Tags }}
Created:   {{ .CreatedAt }}
Updated:   {{ .UpdatedAt }}
{{- if .PublishedAt }}
Published: {{ .PublishedAt }}
{{- end }}
{{- if .Liked }}
Liked:     yes
{{- end }}

---
{{ body .Body }}
---
`

const tagsTemplate = `
=== Tags ===
{{ if eq (len .Catalog) 0 }}
No tags available.{{ with .Notice }} {{ . }}{{ end }}
{{ else }}
{{- range .Catalog }}
  [{{ if .Selected }}x{{ else }} {{ end }}] {{ .Label }}
{{- end }}
{{ end }}
{{- if .UserTags }}
My tags: {{ tags .UserTags }}
{{ end }}
`

const profileTemplate = `
=== Profile ===

Name:               {{ if .Name }}{{ .Name }}{{ else }}(not set){{ end }}
Published articles: {{ .PublishedCount }}
`

const statusTemplate = `
=== Status ===

Articles: {{ len .Published }}
Drafts:   {{ len .Drafts }}
{{- if .RefreshedAt.IsZero }}
Last refresh: never
{{- else }}
Last refresh: {{ .RefreshedAt.Format "2006-01-02 15:04:05" }}
{{- end }}
{{- with .LastFailure }}
Last error:   {{ .Op }}{{ if .ID }} {{ .ID }}{{ end }}: {{ .Err }}
{{- end }}
`

const usageTemplate = `
ArticleKeeper Client

Usage:
  articlekeeper [OPTIONS] COMMAND [ARGS]

Options:
  -version           Show version information
  -config PATH       Path to config file (default: ~/.config/articlekeeper/config.toml)
  -server URL        Server API base URL (default: http://localhost:8080/api/v1)
  -db PATH           Path to local cache database
  -cache BACKEND     Local cache backend: bolt or badger
  -timeout DURATION  Request timeout
  -log-level LEVEL   Log level: debug, info, warn, error

Environment:
  ARTICLEKEEPER_SERVER_URL, ARTICLEKEEPER_DB_PATH, ARTICLEKEEPER_CACHE_BACKEND, ...
  A .env file in the current directory is loaded if present.

Commands:
  feed [-q QUERY] [-favorites]       Show published articles filtered by selected tags
  drafts                             Show your drafts
  show <post|draft> <id>             Show full article
  create [-title T] [-tags a,b] [-publish]
                                     Create a draft (body is read from stdin)
  edit <id> [-title T] [-tags a,b] [-publish]
                                     Edit a draft
  delete <id>                        Delete a draft
  publish <id>                       Publish a draft
  unpublish <id>                     Move an article back to drafts
  tags                               Show tag catalog and selection
  toggle-tag <label>                 Select or deselect a tag
  my-tags [add|remove <label>]       Manage your own tags
  like <id>                          Like or unlike an article
  profile                            Show profile
  set-name <name>                    Set display name
  status                             Show local state
  tui                                Interactive mode

Examples:
  articlekeeper feed -q plants
  articlekeeper toggle-tag AI
  articlekeeper create -title "Hello" -tags "AI, Bio" -publish
  articlekeeper --server https://example.com/api/v1 drafts
`
