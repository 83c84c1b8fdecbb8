package projects

import (
	"net/http"

	"github.com/vikasverma4851/Neoteric-backend/handlers/auth"
	"github.com/vikasverma4851/Neoteric-backend/models"
	"github.com/vikasverma4851/Neoteric-backend/utils"

	"github.com/gin-gonic/gin"
)

func CreateProject(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found in context"})
		return
	}

	var input struct {
		Name        string `json:"name"`
		ProjectType string `json:"projectType"`
		Location    string `json:"location"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Project name is required."})
		return
	}

	project := models.Project{
		Name:        input.Name,
		ProjectType: input.ProjectType,
		Location:    input.Location,
		Description: input.Description,
		CreatedBy:   user.ID,
	}
	if err := utils.DB.Create(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while creating project."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"project": project,
	})
}

func GetAllProjects(c *gin.Context) {
	var projects []models.Project
	if err := utils.DB.Order("name").Find(&projects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while fetching projects."})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    projects,
	})
}

func UpdateProject(c *gin.Context) {
	var project models.Project
	if err := utils.DB.First(&project, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Project not found."})
		return
	}

	var input struct {
		Name        string `json:"name"`
		ProjectType string `json:"projectType"`
		Location    string `json:"location"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid project data."})
		return
	}

	if input.Name != "" {
		project.Name = input.Name
	}
	if input.ProjectType != "" {
		project.ProjectType = input.ProjectType
	}
	if input.Location != "" {
		project.Location = input.Location
	}
	if input.Description != "" {
		project.Description = input.Description
	}

	if err := utils.DB.Save(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while updating project."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"project": project,
	})
}

func DeleteProject(c *gin.Context) {
	var project models.Project
	if err := utils.DB.First(&project, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Project not found."})
		return
	}

	if err := utils.DB.Delete(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while deleting project."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Project deleted successfully.",
	})
}
