package coach

import (
	"fmt"
	"strings"

	"github.com/cristiano-superacao/superacao/internal/domain"
)

// responseRule routes a message to a canned response pool when any of its
// keywords appears in the lowercased input.
type responseRule struct {
	keywords  []string
	responses []string
}

var responseRules = []responseRule{
	{
		keywords: []string{"oi", "olá", "ola"},
		responses: []string{
			"Olá! Como posso ajudar você hoje a superar seus limites?",
			"Oi! Pronto para conquistar novos objetivos?",
			"Olá! Vamos trabalhar juntos para alcançar suas metas!",
		},
	},
	{
		keywords: []string{"motivação", "motivar", "desanimado"},
		responses: []string{
			"Lembre-se: cada pequeno passo conta! Você já chegou até aqui, isso mostra sua força. 💪",
			"Os dias difíceis são os que mais fazem a diferença. Continue firme! 🔥",
			"Sua consistência é impressionante! Cada tarefa concluída é uma vitória. 🏆",
			"Você está construindo a melhor versão de si mesmo. Não desista agora! ⭐",
		},
	},
	{
		keywords: []string{"meta", "objetivo", "goal"},
		responses: []string{
			"Que tal definir uma meta SMART? Específica, mensurável, alcançável, relevante e com prazo definido! 🎯",
			"Grandes objetivos começam com pequenos passos. Qual seria seu primeiro passo hoje?",
			"Recomendo dividir grandes metas em tarefas menores de 25-45 minutos. Funciona muito bem! ⏰",
		},
	},
	{
		keywords: []string{"tempo", "organizar", "produtividade"},
		responses: []string{
			"Experimente a técnica Pomodoro: 25 min focado + 5 min pausa. Funciona muito bem! 🍅",
			"Identifique seu horário de maior produtividade e agende as tarefas mais importantes para esse período.",
			"Que tal começar o dia com a tarefa mais desafiadora? Você terá mais energia! 🌅",
		},
	},
	{
		keywords: []string{"exercício", "exercicio", "saúde", "corpo"},
		responses: []string{
			"Exercício é investimento em si mesmo! Mesmo 15 minutos fazem diferença. 🏃‍♂️",
			"Corpo ativo = mente ativa! O exercício melhora foco e disposição para todas as tarefas.",
			"Que tal começar com uma caminhada de 10 minutos? É um ótimo primeiro passo! 🚶‍♂️",
		},
	},
	{
		keywords: []string{"estudo", "estudar", "aprender"},
		responses: []string{
			"Estude em blocos de 25-45 minutos com pausas. Seu cérebro agradece! 🧠",
			"Revise o que aprendeu antes de dormir. A consolidação acontece durante o sono! 💤",
			"Ensinar o que aprendeu para alguém é uma das melhores formas de fixar o conhecimento! 📚",
		},
	},
	{
		keywords: []string{"estresse", "cansado", "sobrecarregado"},
		responses: []string{
			"Que tal uma pausa de 5 minutos para respirar fundo? Às vezes é tudo que precisamos. 🌬️",
			"Lembre-se: você não precisa fazer tudo hoje. Priorize o que é mais importante. 🎯",
			"Uma sessão rápida de meditação pode fazer maravilhas. Quer que eu te guie? 🧘‍♂️",
		},
	},
}

var defaultResponses = []string{
	"Interessante pergunta! Com base no seu histórico, sugiro focar em consistência pequena e diária. 🎯",
	"Cada pessoa é única! Que tal experimentar diferentes abordagens e ver o que funciona melhor para você? 🔍",
	"Lembre-se: progresso é mais importante que perfeição. Continue avançando! 📈",
	"Ótima reflexão! Como posso ajudar você a transformar isso em uma ação concreta? 💡",
	"Baseado nos seus dados, você tem mostrado grande potencial. Vamos potencializar isso! 🚀",
}

// WelcomeMessage opens a fresh conversation.
const WelcomeMessage = "Olá! Sou seu Coach IA. Estou aqui para ajudar você a superar seus limites. Como posso ajudar hoje?"

// progressKeywords trigger the data-driven progress answer instead of a
// canned pool.
var progressKeywords = []string{"progresso", "como estou", "desempenho"}

func progressResponse(p domain.Profile) string {
	return fmt.Sprintf(
		"Você está indo muito bem! %d tarefas concluídas, %d pontos conquistados e %d dias de consistência. Continue assim! 📈",
		p.CompletedTasks, p.Points, p.Streak,
	)
}

func matchesAny(message string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(message, k) {
			return true
		}
	}
	return false
}

// generateReply picks the canned response for a user message. The pick
// within a pool uses the coach's RNG so tests can seed it.
func (c *Coach) generateReply(message string, p domain.Profile) string {
	lowered := strings.ToLower(message)

	if matchesAny(lowered, progressKeywords) {
		return progressResponse(p)
	}

	for _, rule := range responseRules {
		if matchesAny(lowered, rule.keywords) {
			return rule.responses[c.rng.Intn(len(rule.responses))]
		}
	}
	return defaultResponses[c.rng.Intn(len(defaultResponses))]
}
