package store

import "github.com/Ojuara-e/asteca-seguranca1.0/internal/models"

// Catalog holds the course, ranking and badge fixtures. The data is fixed at
// construction and only copies leave the struct, so no locking is needed.
type Catalog struct {
	courseOrder []string
	courses     map[string]models.Course
	badgeOrder  []string
	badges      map[string]models.Badge
	teamRanking []models.TeamRank
	indivRank   []models.IndividualRank
}

func NewCatalog() *Catalog {
	c := &Catalog{
		courses: make(map[string]models.Course),
		badges:  make(map[string]models.Badge),
	}

	for _, course := range []models.Course{
		{
			ID:          "nr35",
			Title:       "NR-35 - Trabalho em Altura",
			Description: "Treinamento completo para trabalhos acima de 2 metros. Inclui teoria, prática e certificação válida por 2 anos.",
			Price:       180.00,
			Duration:    "16 horas",
			Modules: []string{
				"Introdução à NR-35",
				"Equipamentos de Proteção Individual",
				"Sistemas de Ancoragem",
				"Técnicas de Resgate",
				"Prática Supervisionada",
				"Avaliação Final",
			},
			PointsReward: 50,
		},
		{
			ID:          "nr10",
			Title:       "NR-10 - Segurança em Eletricidade",
			Description: "Capacitação obrigatória para trabalhos com eletricidade. Ministrado por profissional bombeiro experiente.",
			Price:       220.00,
			Duration:    "40 horas",
			Modules: []string{
				"Fundamentos de Eletricidade",
				"Riscos Elétricos",
				"Medidas de Proteção",
				"Equipamentos de Segurança",
				"Primeiros Socorros",
				"Prática de Campo",
			},
			PointsReward: 60,
		},
		{
			ID:          "nr18",
			Title:       "NR-18 - Construção Civil",
			Description: "Segurança específica para canteiros de obras. Ideal para pedreiros, pintores e operadores de máquinas.",
			Price:       160.00,
			Duration:    "20 horas",
			Modules: []string{
				"Segurança em Canteiros",
				"Proteção contra Quedas",
				"Máquinas e Equipamentos",
				"Sinalização de Segurança",
				"Ordem e Limpeza",
				"Avaliação Prática",
			},
			PointsReward: 40,
		},
		{
			ID:          "primeiros-socorros",
			Title:       "Primeiros Socorros",
			Description: "Aprenda a salvar vidas no ambiente de trabalho. Curso prático com simulações reais.",
			Price:       120.00,
			Duration:    "12 horas",
			Modules: []string{
				"Avaliação da Vítima",
				"Reanimação Cardiopulmonar",
				"Controle de Hemorragias",
				"Fraturas e Luxações",
				"Queimaduras",
				"Simulações Práticas",
			},
			PointsReward: 30,
		},
		{
			ID:          "cipa",
			Title:       "CIPA - Comissão Interna",
			Description: "Formação completa para membros da CIPA. Desenvolva habilidades de liderança em segurança.",
			Price:       280.00,
			Duration:    "20 horas",
			Modules: []string{
				"Legislação de Segurança",
				"Análise de Riscos",
				"Investigação de Acidentes",
				"Comunicação Efetiva",
				"Liderança em Segurança",
				"Projeto Final",
			},
			PointsReward: 70,
		},
		{
			ID:          "empilhadeira",
			Title:       "Operador de Empilhadeira",
			Description: "Habilitação completa para operação segura de empilhadeiras. Teoria + prática + certificação.",
			Price:       350.00,
			Duration:    "40 horas",
			Modules: []string{
				"Tipos de Empilhadeiras",
				"Inspeção Diária",
				"Técnicas de Operação",
				"Segurança Operacional",
				"Manutenção Básica",
				"Prova Prática",
			},
			PointsReward: 80,
		},
	} {
		c.courseOrder = append(c.courseOrder, course.ID)
		c.courses[course.ID] = course
	}

	for _, badge := range []models.Badge{
		{
			ID:             "safety_expert",
			Name:           "Especialista em Segurança",
			Description:    "Concluiu 3 cursos",
			Icon:           "badge-safety-expert.png",
			PointsRequired: 150,
		},
		{
			ID:             "team_player",
			Name:           "Colaborador Exemplar",
			Description:    "Ajudou colegas de equipe",
			Icon:           "trophy-team-ranking.png",
			PointsRequired: 100,
		},
		{
			ID:             "perfect_attendance",
			Name:           "Sempre Presente",
			Description:    "100% de presença",
			Icon:           "calendar-schedule.png",
			PointsRequired: 50,
		},
		{
			ID:             "safety_master",
			Name:           "Mestre da Segurança",
			Description:    "Concluir todos os cursos",
			Icon:           "badge-safety-expert.png",
			PointsRequired: 400,
		},
	} {
		c.badgeOrder = append(c.badgeOrder, badge.ID)
		c.badges[badge.ID] = badge
	}

	c.teamRanking = []models.TeamRank{
		{Name: "Equipe Construção A", Members: 5, Points: 1250, Position: 1},
		{Name: "Pintores Pro", Members: 4, Points: 980, Position: 2},
		{Name: "Equipe Operadores", Members: 6, Points: 750, Position: 3},
		{Name: "Soldadores Unidos", Members: 3, Points: 620, Position: 4},
		{Name: "Eletricistas Pro", Members: 4, Points: 580, Position: 5},
	}

	c.indivRank = []models.IndividualRank{
		{Name: "João Silva", Team: "Equipe Construção A", Points: 320, Position: 1},
		{Name: "Aluno Teste", Team: "Pintores Pro", Points: 250, Position: 2},
		{Name: "Maria Santos", Team: "Equipe Operadores", Points: 180, Position: 3},
		{Name: "Carlos Oliveira", Team: "Soldadores Unidos", Points: 160, Position: 4},
		{Name: "Ana Costa", Team: "Eletricistas Pro", Points: 140, Position: 5},
	}

	return c
}

// Courses returns all courses in catalog order.
func (c *Catalog) Courses() []models.Course {
	out := make([]models.Course, 0, len(c.courseOrder))
	for _, id := range c.courseOrder {
		out = append(out, c.courses[id])
	}
	return out
}

// Course returns a single course by id.
func (c *Catalog) Course(id string) (models.Course, bool) {
	course, ok := c.courses[id]
	return course, ok
}

// CourseName resolves a course id to its display title, falling back to the
// raw id for unknown courses.
func (c *Catalog) CourseName(id string) string {
	if course, ok := c.courses[id]; ok {
		return course.Title
	}
	return id
}

// Badges returns all badges in catalog order.
func (c *Catalog) Badges() []models.Badge {
	out := make([]models.Badge, 0, len(c.badgeOrder))
	for _, id := range c.badgeOrder {
		out = append(out, c.badges[id])
	}
	return out
}

// Badge returns a single badge by id.
func (c *Catalog) Badge(id string) (models.Badge, bool) {
	badge, ok := c.badges[id]
	return badge, ok
}

func (c *Catalog) TeamRanking() []models.TeamRank {
	out := make([]models.TeamRank, len(c.teamRanking))
	copy(out, c.teamRanking)
	return out
}

func (c *Catalog) IndividualRanking() []models.IndividualRank {
	out := make([]models.IndividualRank, len(c.indivRank))
	copy(out, c.indivRank)
	return out
}
