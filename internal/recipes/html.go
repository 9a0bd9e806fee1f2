package recipes

import (
	"html/template"
	"io"

	"mirepoix/internal/units"
)

var recipeTemplate = template.Must(template.New("recipe").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Recipe.Title}}</title>
</head>
<body>
<h1>{{.Recipe.Title}}</h1>
{{if .Recipe.Description}}<p>{{.Recipe.Description}}</p>{{end}}
<h2>Ingredients ({{.System}})</h2>
<ul class="ingredients">
{{range .Ingredients}}<li>{{.}}</li>
{{end}}</ul>
{{if .Recipe.Instructions}}<h2>Instructions</h2>
<ol>
{{range .Recipe.Instructions}}<li>{{.}}</li>
{{end}}</ol>{{end}}
<form method="get">
<input type="hidden" name="url" value="{{.URL}}">
<button name="to" value="metric">metric</button>
<button name="to" value="imperial">imperial</button>
</form>
</body>
</html>
`))

// FormatRecipeHTML renders a single recipe with its ingredient list already
// localized into the requested system.
func FormatRecipeHTML(recipe *Recipe, system units.System, url string, writer io.Writer) error {
	data := struct {
		Recipe      *Recipe
		System      units.System
		Ingredients []LocalizedIngredient
		URL         string
	}{
		Recipe:      recipe,
		System:      system,
		Ingredients: recipe.Localize(system),
		URL:         url,
	}
	return recipeTemplate.Execute(writer, data)
}
