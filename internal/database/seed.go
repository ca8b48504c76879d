package database

import (
	"gorm.io/gorm"

	"github.com/youssefchaouch/dental-practice-api/internal/models"
)

// Seed loads the initial service catalog and a handful of approved
// testimonials. Safe to run on every startup: it only inserts into
// empty tables.
func Seed(db *gorm.DB) error {
	var serviceCount int64
	if err := db.Model(&models.Service{}).Count(&serviceCount).Error; err != nil {
		return err
	}
	if serviceCount == 0 {
		services := []models.Service{
			{Name: "Regular Cleaning", Description: "Professional dental cleaning and examination", Duration: 60, Price: 120.00, IsActive: true},
			{Name: "Teeth Whitening", Description: "Professional teeth whitening treatment", Duration: 90, Price: 300.00, IsActive: true},
			{Name: "Dental Filling", Description: "Composite or amalgam dental fillings", Duration: 45, Price: 180.00, IsActive: true},
			{Name: "Root Canal", Description: "Root canal treatment", Duration: 120, Price: 800.00, IsActive: true},
			{Name: "Crown Placement", Description: "Dental crown installation", Duration: 90, Price: 1200.00, IsActive: true},
			{Name: "Dental Implant", Description: "Dental implant procedure", Duration: 180, Price: 2500.00, IsActive: true},
		}
		if err := db.Create(&services).Error; err != nil {
			return err
		}
	}

	var reviewCount int64
	if err := db.Model(&models.Review{}).Count(&reviewCount).Error; err != nil {
		return err
	}
	if reviewCount == 0 {
		reviews := []models.Review{
			{PatientName: "John Smith", Rating: 5, Comment: "Excellent service! Dr. Johnson is very professional and gentle. The office is clean and modern.", IsApproved: true},
			{PatientName: "Sarah Davis", Rating: 5, Comment: "Best dental experience I've ever had. The staff is friendly and Dr. Johnson explained everything clearly.", IsApproved: true},
			{PatientName: "Michael Brown", Rating: 4, Comment: "Great dental care. Very satisfied with my teeth cleaning. Would recommend to others.", IsApproved: true},
			{PatientName: "Emily Wilson", Rating: 5, Comment: "Amazing results from my teeth whitening treatment. Dr. Johnson and her team are fantastic!", IsApproved: true},
		}
		if err := db.Create(&reviews).Error; err != nil {
			return err
		}
	}

	return nil
}
