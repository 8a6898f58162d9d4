package main

import (
	"egrow/config"
	"egrow/database"
	"egrow/models"
	courseModels "egrow/models/course"
	"fmt"
	"log"
)

type seedCourse struct {
	course  courseModels.Course
	lessons []string // titles in lesson order
}

var catalog = []seedCourse{
	{
		course: courseModels.Course{
			Slug:         "monetiza-ia",
			Title:        "Monetiza con IA",
			Description:  "Aprende a generar ingresos con herramientas de inteligencia artificial",
			Category:     "negocios",
			Author:       "eGrow Academy",
			Duration:     6,
			TotalLessons: 8,
			IsFree:       true,
			RequiresAuth: true,
			IsPublished:  true,
		},
		lessons: []string{
			"Introducción a la monetización con IA",
			"Identifica tu nicho",
			"Herramientas esenciales",
			"Creación de contenido con IA",
			"Automatización de servicios",
			"Precios y propuestas",
			"Primeros clientes",
			"Escala tu operación",
		},
	},
	{
		course: courseModels.Course{
			Slug:         "chatgpt-desde-cero",
			Title:        "ChatGPT desde cero",
			Description:  "Domina ChatGPT y los asistentes de IA aplicados al trabajo diario",
			Category:     "ia",
			Author:       "eGrow Academy",
			Duration:     4,
			TotalLessons: 6,
			IsFree:       true,
			RequiresAuth: true,
			IsPublished:  true,
		},
		lessons: []string{
			"Qué es un LLM",
			"Tu primera conversación",
			"Prompts efectivos",
			"Casos de uso en el trabajo",
			"Límites y alucinaciones",
			"Flujos de trabajo con IA",
		},
	},
	{
		course: courseModels.Course{
			Slug:         "marketing-digital-ia",
			Title:        "Marketing digital con IA",
			Description:  "Estrategias de marketing potenciadas con inteligencia artificial",
			Category:     "marketing",
			Author:       "eGrow Academy",
			Duration:     8,
			TotalLessons: 10,
			Price:        49900,
			IsFree:       false,
			RequiresAuth: true,
			IsPublished:  true,
		},
		lessons: []string{
			"Panorama del marketing con IA",
			"Investigación de audiencia",
			"Copywriting asistido",
			"Creatividades y diseño",
			"Campañas en redes sociales",
			"Email marketing automatizado",
			"SEO con IA",
			"Analítica y atribución",
			"Optimización de campañas",
			"Plan de marketing completo",
		},
	},
}

var defaultWeights = map[string]float64{
	"course":         0.9,
	"resource":       0.8,
	"community":      0.7,
	"static_primary": 0.95,
}

func main() {
	config.LoadConfig()
	database.ConnectDb()
	db := database.Database.Db

	for _, seed := range catalog {
		var course courseModels.Course
		err := db.Where("slug = ?", seed.course.Slug).First(&course).Error
		if err != nil {
			course = seed.course
			if err := db.Create(&course).Error; err != nil {
				log.Printf("[SEED] Could not create course %s: %v", seed.course.Slug, err)
				continue
			}
			log.Printf("[SEED] Created course %s", course.Slug)
		} else {
			course.Title = seed.course.Title
			course.Description = seed.course.Description
			course.Category = seed.course.Category
			course.TotalLessons = seed.course.TotalLessons
			course.Price = seed.course.Price
			course.IsFree = seed.course.IsFree
			course.IsPublished = seed.course.IsPublished
			if err := db.Save(&course).Error; err != nil {
				log.Printf("[SEED] Could not update course %s: %v", course.Slug, err)
				continue
			}
			log.Printf("[SEED] Updated course %s", course.Slug)
		}

		for i, title := range seed.lessons {
			number := i + 1
			publicID := fmt.Sprintf("%s-l%02d", course.Slug, number)

			var lesson courseModels.Lesson
			err := db.Where("course_id = ? AND lesson_number = ?", course.ID, number).First(&lesson).Error
			if err != nil {
				lesson = courseModels.Lesson{
					CourseID:     course.ID,
					LessonNumber: number,
					PublicID:     publicID,
					Title:        title,
					IsPublished:  true,
				}
				if err := db.Create(&lesson).Error; err != nil {
					log.Printf("[SEED] Could not create lesson %s: %v", publicID, err)
				}
			} else {
				lesson.Title = title
				lesson.PublicID = publicID
				db.Save(&lesson)
			}
		}
	}

	for source, weight := range defaultWeights {
		var row models.SearchWeight
		if err := db.Where("source = ?", source).First(&row).Error; err != nil {
			db.Create(&models.SearchWeight{Source: source, Weight: weight})
		}
	}

	log.Println("[SEED] Catalog seeded.")
}
