package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	appconfig "github.com/provamed/backend/config"
	"github.com/provamed/backend/internal/model"
	"github.com/provamed/backend/internal/repository"
)

func main() {
	cfg := appconfig.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	questionRepo := repository.NewQuestionRepo(client.Database(cfg.MongoDB))

	questions := []*model.Question{
		{
			Statement: "Paciente de 62 anos com dor torácica em aperto há 40 minutos, irradiando para o membro superior esquerdo, com supradesnivelamento de ST em DII, DIII e aVF. Qual a conduta imediata?",
			Options: map[string]string{
				"A": "Trombólise ou angioplastia primária",
				"B": "Teste ergométrico",
				"C": "Ecocardiograma transesofágico eletivo",
				"D": "Alta com antiagregante oral",
			},
			CorrectAnswer: "A",
			Specialty:     "Cardiologia",
			Source:        "USP",
			Year:          2023,
			Topic:         "Síndrome coronariana aguda",
		},
		{
			Statement: "Lactente de 8 meses com sibilância, tiragem subcostal e história de coriza há 2 dias. Qual o agente etiológico mais provável?",
			Options: map[string]string{
				"A": "Streptococcus pneumoniae",
				"B": "Vírus sincicial respiratório",
				"C": "Mycoplasma pneumoniae",
				"D": "Haemophilus influenzae",
			},
			CorrectAnswer: "B",
			Specialty:     "Pediatria",
			Source:        "UNIFESP",
			Year:          2023,
			Topic:         "Bronquiolite",
		},
		{
			Statement: "Gestante de 34 semanas com pressão arterial de 160x110 mmHg, proteinúria e cefaleia. Qual o diagnóstico?",
			Options: map[string]string{
				"A": "Hipertensão gestacional",
				"B": "Pré-eclâmpsia sem sinais de gravidade",
				"C": "Pré-eclâmpsia com sinais de gravidade",
				"D": "Hipertensão crônica",
			},
			CorrectAnswer: "C",
			Specialty:     "Ginecologia e Obstetrícia",
			Source:        "USP",
			Year:          2022,
			Topic:         "Síndromes hipertensivas da gestação",
		},
		{
			Statement: "Homem de 45 anos com dor abdominal em faixa, náuseas e amilase sérica 5 vezes o limite superior. Qual a principal etiologia a investigar?",
			Options: map[string]string{
				"A": "Litíase biliar",
				"B": "Hipercalcemia",
				"C": "Trauma abdominal",
				"D": "Caxumba",
			},
			CorrectAnswer: "A",
			Specialty:     "Cirurgia Geral",
			Source:        "UNICAMP",
			Year:          2024,
			Topic:         "Pancreatite aguda",
		},
	}

	for _, q := range questions {
		if err := questionRepo.Create(ctx, q); err != nil {
			log.Fatalf("Failed to seed question: %v", err)
		}
		fmt.Printf("Seeded question %s (%s, %s %d)\n", q.ID, q.Specialty, q.Source, q.Year)
	}

	fmt.Printf("Seeded %d questions\n", len(questions))
}
