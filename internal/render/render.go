// Package render executes the HTML templates under ui/html.
package render

import (
	"html/template"
	"log"
	"net/http"

	"github.com/FundSpring/FS-Web/internal/utils"
)

// BaseData is what the shared layout (navbar) needs on every page: whether a
// user is signed in and who to greet. Page data structs embed it.
type BaseData struct {
	LoggedIn bool
	Username string
}

// Base builds the layout data from the session middleware's context entry.
func Base(r *http.Request) BaseData {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		return BaseData{}
	}
	return BaseData{LoggedIn: true, Username: session.Username}
}

// Dir is where the templates live, relative to the working directory.
var Dir = "./ui/html"

// Page renders the named page template inside the base layout.
func Page(w http.ResponseWriter, name string, data any) {
	tmpl, err := template.ParseFiles(Dir+"/base.html", Dir+"/"+name)
	if err != nil {
		log.Println("template parse error: ", err)
		http.Error(w, "Error loading page", http.StatusInternalServerError)
		return
	}

	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil {
		log.Println("template render error: ", err)
	}
}
