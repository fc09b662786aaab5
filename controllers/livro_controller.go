package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/brunorehling/api-emergente/models"
	"github.com/brunorehling/api-emergente/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type LivroController struct {
	DB *gorm.DB
}

func NewLivroController(db *gorm.DB) *LivroController {
	return &LivroController{DB: db}
}

func (lc *LivroController) List(c *gin.Context) {
	var livros []models.Livro
	if err := lc.DB.WithContext(c.Request.Context()).Preload("Autor").Find(&livros).Error; err != nil {
		abortWithServiceError(c, services.Fault("Erro ao buscar livros", err))
		return
	}
	c.JSON(http.StatusOK, livros)
}

func (lc *LivroController) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "ID inválido"})
		return
	}

	var livro models.Livro
	if err := lc.DB.WithContext(c.Request.Context()).Preload("Autor").First(&livro, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"erro": "Livro não encontrado"})
			return
		}
		abortWithServiceError(c, services.Fault("Erro ao buscar livro", err))
		return
	}

	c.JSON(http.StatusOK, livro)
}

func (lc *LivroController) Create(c *gin.Context) {
	var input struct {
		Nome           string `json:"nome" binding:"required,max=60"`
		DataLancamento string `json:"dataLancamento" binding:"required"`
		Foto           string `json:"foto"`
		Descricao      string `json:"descricao" binding:"max=200"`
		Genero         string `json:"genero"`
		AutorNome      string `json:"autorNome" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, bindErrors(err))
		return
	}

	dataLancamento, err := time.Parse("2006-01-02", input.DataLancamento)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Data de lançamento inválida"})
		return
	}

	genero := models.Genero(input.Genero)
	if input.Genero == "" {
		genero = models.GeneroAcao
	}
	if !genero.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Gênero inválido"})
		return
	}

	// Author is resolved by name, not id.
	var autor models.Autor
	if err := lc.DB.WithContext(c.Request.Context()).Where("nome = ?", input.AutorNome).First(&autor).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusBadRequest, gin.H{"erro": "Autor não encontrado"})
			return
		}
		abortWithServiceError(c, services.Fault("Erro ao buscar autor", err))
		return
	}

	livro := models.Livro{
		Nome:           input.Nome,
		DataLancamento: dataLancamento,
		Foto:           input.Foto,
		Descricao:      input.Descricao,
		Genero:         genero,
		AutorID:        autor.ID,
	}

	if err := lc.DB.WithContext(c.Request.Context()).Create(&livro).Error; err != nil {
		abortWithServiceError(c, services.Fault("Erro ao criar livro", err))
		return
	}

	livro.Autor = autor
	c.JSON(http.StatusCreated, livro)
}
