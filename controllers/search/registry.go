package controllers

// StaticPage is one entry of the fixed in-memory page registry evaluated by
// the global search. BaseScore is the tuned per-entry relevance used when the
// query matches without hitting the page's primary keyword.
type StaticPage struct {
	Path           string
	Title          string
	Description    string
	Tags           []string
	PrimaryKeyword string
	BaseScore      float64
}

// StaticPages exposes the registry to the sitemap generator
func StaticPages() []StaticPage {
	return staticPages
}

// staticPages is the registry of site pages searchable without a database hit
var staticPages = []StaticPage{
	{
		Path:           "/",
		Title:          "eGrow Academy",
		Description:    "Plataforma de cursos de inteligencia artificial y habilidades digitales",
		Tags:           []string{"inicio", "home", "academia", "ia"},
		PrimaryKeyword: "egrow",
		BaseScore:      0.6,
	},
	{
		Path:           "/cursos",
		Title:          "Catálogo de cursos",
		Description:    "Explora todos los cursos disponibles de IA, marketing y desarrollo",
		Tags:           []string{"cursos", "catalogo", "aprender"},
		PrimaryKeyword: "cursos",
		BaseScore:      0.7,
	},
	{
		Path:           "/cursos-gratuitos",
		Title:          "Cursos gratuitos",
		Description:    "Cursos sin costo para comenzar a aprender hoy mismo",
		Tags:           []string{"gratis", "gratuito", "free"},
		PrimaryKeyword: "gratis",
		BaseScore:      0.7,
	},
	{
		Path:           "/certificados",
		Title:          "Certificados",
		Description:    "Verifica y descarga tus certificados de finalización de cursos",
		Tags:           []string{"certificado", "certificados", "diploma", "constancia"},
		PrimaryKeyword: "certificado",
		BaseScore:      0.7,
	},
	{
		Path:           "/comunidad",
		Title:          "Comunidad",
		Description:    "Foro de la comunidad: comparte avances, dudas y proyectos",
		Tags:           []string{"comunidad", "foro", "posts"},
		PrimaryKeyword: "comunidad",
		BaseScore:      0.65,
	},
	{
		Path:           "/recursos",
		Title:          "Recursos",
		Description:    "Guías, plantillas y herramientas descargables",
		Tags:           []string{"recursos", "descargas", "plantillas", "guias"},
		PrimaryKeyword: "recursos",
		BaseScore:      0.7,
	},
	{
		Path:           "/precios",
		Title:          "Planes y precios",
		Description:    "Compara los planes de suscripción y sus beneficios",
		Tags:           []string{"precios", "planes", "suscripcion", "premium"},
		PrimaryKeyword: "precios",
		BaseScore:      0.65,
	},
	{
		Path:           "/curso/monetiza-ia",
		Title:          "Monetiza con IA",
		Description:    "Aprende a generar ingresos con herramientas de inteligencia artificial",
		Tags:           []string{"monetizar", "ia", "ingresos", "negocios"},
		PrimaryKeyword: "monetiza",
		BaseScore:      0.7,
	},
	{
		Path:           "/curso/chatgpt-desde-cero",
		Title:          "ChatGPT desde cero",
		Description:    "Domina ChatGPT y los asistentes de IA aplicados al trabajo diario",
		Tags:           []string{"chatgpt", "ia", "prompts", "asistentes"},
		PrimaryKeyword: "chatgpt",
		BaseScore:      0.7,
	},
	{
		Path:           "/curso/marketing-digital-ia",
		Title:          "Marketing digital con IA",
		Description:    "Estrategias de marketing potenciadas con inteligencia artificial",
		Tags:           []string{"marketing", "publicidad", "redes", "ia"},
		PrimaryKeyword: "marketing",
		BaseScore:      0.7,
	},
	{
		Path:           "/eventos",
		Title:          "Eventos y webinars",
		Description:    "Calendario de eventos en vivo, webinars y talleres",
		Tags:           []string{"eventos", "webinar", "taller", "vivo"},
		PrimaryKeyword: "eventos",
		BaseScore:      0.65,
	},
	{
		Path:           "/blog",
		Title:          "Blog",
		Description:    "Artículos sobre IA, productividad y carrera profesional",
		Tags:           []string{"blog", "articulos", "noticias"},
		PrimaryKeyword: "blog",
		BaseScore:      0.6,
	},
	{
		Path:           "/sobre-nosotros",
		Title:          "Sobre nosotros",
		Description:    "Conoce al equipo y la misión de eGrow Academy",
		Tags:           []string{"nosotros", "equipo", "mision"},
		PrimaryKeyword: "nosotros",
		BaseScore:      0.6,
	},
	{
		Path:           "/contacto",
		Title:          "Contacto",
		Description:    "Escríbenos para soporte, alianzas o facturación",
		Tags:           []string{"contacto", "soporte", "ayuda"},
		PrimaryKeyword: "contacto",
		BaseScore:      0.65,
	},
	{
		Path:           "/preguntas-frecuentes",
		Title:          "Preguntas frecuentes",
		Description:    "Respuestas a las dudas más comunes sobre cursos y pagos",
		Tags:           []string{"faq", "preguntas", "dudas", "ayuda"},
		PrimaryKeyword: "preguntas",
		BaseScore:      0.65,
	},
	{
		Path:           "/mi-cuenta",
		Title:          "Mi cuenta",
		Description:    "Administra tu perfil, suscripción y preferencias",
		Tags:           []string{"cuenta", "perfil", "configuracion"},
		PrimaryKeyword: "cuenta",
		BaseScore:      0.6,
	},
	{
		Path:           "/mi-aprendizaje",
		Title:          "Mi aprendizaje",
		Description:    "Tus cursos en progreso, completados y guardados",
		Tags:           []string{"aprendizaje", "progreso", "mis cursos"},
		PrimaryKeyword: "aprendizaje",
		BaseScore:      0.65,
	},
	{
		Path:           "/rachas",
		Title:          "Rachas y metas",
		Description:    "Tu racha de estudio, meta semanal y logros",
		Tags:           []string{"racha", "meta", "logros", "streak"},
		PrimaryKeyword: "racha",
		BaseScore:      0.6,
	},
	{
		Path:           "/facturacion",
		Title:          "Facturación",
		Description:    "Historial de pagos y comprobantes fiscales",
		Tags:           []string{"facturacion", "pagos", "comprobante"},
		PrimaryKeyword: "facturacion",
		BaseScore:      0.6,
	},
	{
		Path:           "/terminos",
		Title:          "Términos y condiciones",
		Description:    "Términos legales de uso de la plataforma",
		Tags:           []string{"terminos", "legal", "condiciones"},
		PrimaryKeyword: "terminos",
		BaseScore:      0.6,
	},
	{
		Path:           "/privacidad",
		Title:          "Aviso de privacidad",
		Description:    "Cómo tratamos y protegemos tus datos personales",
		Tags:           []string{"privacidad", "datos", "legal"},
		PrimaryKeyword: "privacidad",
		BaseScore:      0.6,
	},
	{
		Path:           "/instructores",
		Title:          "Instructores",
		Description:    "Conoce a los instructores detrás de cada curso",
		Tags:           []string{"instructores", "profesores", "mentores"},
		PrimaryKeyword: "instructores",
		BaseScore:      0.6,
	},
	{
		Path:           "/empresas",
		Title:          "eGrow para empresas",
		Description:    "Capacitación en IA para equipos y organizaciones",
		Tags:           []string{"empresas", "equipos", "b2b", "capacitacion"},
		PrimaryKeyword: "empresas",
		BaseScore:      0.65,
	},
	{
		Path:           "/afiliados",
		Title:          "Programa de afiliados",
		Description:    "Gana comisiones recomendando eGrow Academy",
		Tags:           []string{"afiliados", "comisiones", "referidos"},
		PrimaryKeyword: "afiliados",
		BaseScore:      0.6,
	},
	{
		Path:           "/newsletter",
		Title:          "Newsletter",
		Description:    "Suscríbete al boletín semanal de IA y aprendizaje",
		Tags:           []string{"newsletter", "boletin", "correo"},
		PrimaryKeyword: "newsletter",
		BaseScore:      0.6,
	},
}
