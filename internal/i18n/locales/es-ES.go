package locales

var esES = map[string]string{
	"health.ok":    "La API de gestión de localización está en funcionamiento",
	"csv.imported": "Importación CSV completada: {{.Created}} claves creadas, {{.Updated}} claves actualizadas, {{.Translations}} traducciones escritas",
}
