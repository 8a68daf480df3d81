package components

import "time"

var motivationalQuotes = []string{
	"Seu corpo é capaz de muito, seu cérebro precisa acreditar.",
	"Disciplina constrói liberdade.",
	"Cada jejum concluído é uma vitória sobre sua versão de ontem.",
	"O segredo do futuro está escondido na sua rotina diária.",
	"Não pare quando estiver cansado, pare quando tiver terminado.",
	"A dor é temporária, a glória é eterna.",
	"Comer é uma necessidade, jejuar é uma arte.",
	"Sua saúde é o seu maior investimento.",
	"Foco no progresso, não na perfeição.",
	"Você é mais forte do que sua vontade de comer.",
	"Transformação requer paciência e persistência.",
	"O corpo cura a si mesmo quando damos uma pausa.",
	"Controle sua mente e conquistará seu corpo.",
	"Pequenos progressos diários somam grandes resultados.",
	"Hoje é um ótimo dia para começar.",
	"Jejum não é passar fome, é dar um tempo.",
	"A melhor versão de você está te esperando.",
	"Respeite seu corpo.",
	"A fome é uma onda, ela vem e passa.",
	"Sinta a clareza mental.",
	"Desafie seus limites.",
	"Se fosse fácil, todo mundo faria.",
	"Você está no controle.",
	"Autodisciplina é amor próprio.",
	"Um dia de cada vez.",
	"Respire fundo e continue.",
	"Beba água e mantenha o foco.",
	"Seus objetivos estão mais perto do que imagina.",
	"Não negocie com a preguiça.",
	"A consistência é a chave.",
	"Você consegue fazer coisas difíceis.",
	"O desconforto traz crescimento.",
	"Limpe seu corpo, limpe sua mente.",
	"Seja sua própria inspiração.",
	"Acredite no processo.",
	"Resultados vêm com o tempo.",
	"Mantenha-se hidratado.",
	"Você está construindo um novo hábito.",
	"Nada muda se nada mudar.",
	"Faça por você.",
}

var spiritualQuotes = []string{
	"Nem só de pão viverá o homem. (Mateus 4:4)",
	"Quando jejuarem, não mostrem uma aparência triste. (Mateus 6:16)",
	"O jejum que desejo não é este: soltar as correntes da injustiça... (Isaías 58:6)",
	"Humilhai-vos, pois, debaixo da potente mão de Deus. (1 Pedro 5:6)",
	"Tudo posso naquele que me fortalece. (Filipenses 4:13)",
	"O espírito está pronto, mas a carne é fraca. (Mateus 26:41)",
	"Busquem, pois, em primeiro lugar o Reino de Deus. (Mateus 6:33)",
	"Aquietai-vos, e sabei que eu sou Deus. (Salmos 46:10)",
	"O jejum desconecta do mundo e conecta com Deus.",
	"Alimente seu espírito enquanto seu corpo descansa.",
	"Orar é falar com Deus; jejuar é demonstrar que você fala sério.",
	"Menos de mim, mais de Ti.",
	"O silêncio do corpo é a voz do espírito.",
	"Santificai um jejum, convocai uma assembleia solene. (Joel 1:14)",
	"Que a minha oração suba a ti como incenso. (Salmos 141:2)",
	"Fortalecei as mãos frouxas e firmai os joelhos vacilantes. (Isaías 35:3)",
	"Aquele que habita no esconderijo do Altíssimo... (Salmos 91:1)",
	"Não andeis ansiosos por coisa alguma. (Filipenses 4:6)",
	"O temor do Senhor é o princípio da sabedoria. (Provérbios 9:10)",
	"Renovai-vos pelo espírito do vosso entendimento. (Efésios 4:23)",
}

// QuoteOfDay picks deterministically per day so the quote stays stable while
// the timer ticks. With spiritual content enabled the pool doubles up.
func QuoteOfDay(now time.Time, spiritual bool) string {
	pool := motivationalQuotes
	if spiritual {
		pool = append(append([]string{}, motivationalQuotes...), spiritualQuotes...)
	}
	day := now.Year()*366 + now.YearDay()
	return pool[day%len(pool)]
}
