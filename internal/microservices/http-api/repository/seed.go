package repository

import (
	"time"

	"referrify/internal/microservices/http-api/models"
)

// defaultJobs is what an empty store lists. Nothing is persisted until the
// first mutation rewrites the collection.
func defaultJobs(now time.Time) []models.Job {
	const day = 24 * time.Hour
	weekAgo := now.Add(-7 * day)

	return []models.Job{
		{
			ID:          "job_default_1",
			Title:       "Software Engineer",
			Company:     "Meta",
			Location:    "Menlo Park, CA",
			Type:        models.JobTypeFullTime,
			Department:  "Engineering",
			Description: "Join our team as a Software Engineer and work on cutting-edge technologies that connect billions of people worldwide.",
			Requirements: []string{
				"Bachelor's degree in Computer Science or related field",
				"3+ years of experience in software development",
				"Proficiency in Python, JavaScript, or similar languages",
				"Experience with React, Node.js, or similar frameworks",
			},
			Responsibilities: []string{
				"Design and develop scalable web applications",
				"Collaborate with cross-functional teams",
				"Write clean, maintainable code",
				"Participate in code reviews and technical discussions",
			},
			Salary: &models.Salary{Min: 120000, Max: 180000, Currency: "USD"},
			Benefits: []string{
				"Health, dental, and vision insurance",
				"Stock options",
				"Flexible working hours",
				"Professional development budget",
			},
			ApplicationDeadline: models.NewDate(now.Add(30 * day)),
			PostedBy: models.Poster{
				Name:  "Sarah Johnson",
				Email: "sarah.johnson@meta.com",
				Role:  models.PosterAlumni,
			},
			Status:            models.JobStatusActive,
			CreatedAt:         now,
			UpdatedAt:         now,
			ApplicationsCount: 15,
			ViewsCount:        127,
		},
		{
			ID:          "job_default_2",
			Title:       "Product Manager Intern",
			Company:     "Google",
			Location:    "Mountain View, CA",
			Type:        models.JobTypeInternship,
			Department:  "Product",
			Description: "Summer internship opportunity for aspiring product managers to work on Google's core products.",
			Requirements: []string{
				"Currently pursuing Bachelor's or Master's degree",
				"Strong analytical and problem-solving skills",
				"Previous internship or project experience preferred",
				"Excellent communication skills",
			},
			Responsibilities: []string{
				"Assist in product roadmap planning",
				"Conduct user research and analysis",
				"Work with engineering and design teams",
				"Present findings to senior leadership",
			},
			Benefits: []string{
				"Competitive internship stipend",
				"Housing assistance",
				"Mentorship program",
				"Full-time offer potential",
			},
			ApplicationDeadline: models.NewDate(now.Add(45 * day)),
			PostedBy: models.Poster{
				Name:  "Admin User",
				Email: "admin@referrify.com",
				Role:  models.PosterAdmin,
			},
			Status:            models.JobStatusActive,
			CreatedAt:         weekAgo,
			UpdatedAt:         weekAgo,
			ApplicationsCount: 8,
			ViewsCount:        89,
		},
	}
}
