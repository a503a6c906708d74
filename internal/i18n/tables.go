package i18n

var english = map[string]string{
	"app.title": "Bellum Astrum",

	"login.title":        "Sign In",
	"login.email":        "Email",
	"login.password":     "Password",
	"login.submit":       "Sign In",
	"login.register":     "Register",
	"login.nickname":     "Nickname",
	"login.failed":       "Login failed",
	"register.failed":    "Registration failed",
	"register.submitted": "Account created",

	"nav.dashboard": "Dashboard",
	"nav.battle":    "Battle",
	"nav.market":    "Market",
	"nav.fleet":     "Fleet",
	"nav.work":      "Work",
	"nav.messages":  "Messages",
	"nav.logout":    "Log Out",
	"nav.quit":      "Quit",

	"dashboard.level":     "Level",
	"dashboard.credits":   "Credits",
	"dashboard.elo":       "ELO",
	"dashboard.rank":      "Rank",
	"dashboard.record":    "Record",
	"dashboard.formation": "Default Formation",

	"battle.opponents":      "Opponents",
	"battle.start":          "Start Battle",
	"battle.victory":        "Victory!",
	"battle.defeat":         "Defeat",
	"battle.draw":           "Draw",
	"battle.no_ships":       "You need at least one active ship to battle",
	"battle.opponent_empty": "Opponent has no active ships",
	"battle.failed":         "Battle could not be started",
	"battle.log_title":      "Battle Log",

	"fleet.title":      "Your Fleet",
	"fleet.activate":   "Activate",
	"fleet.deactivate": "Deactivate",
	"fleet.repair":     "Repair",
	"fleet.repaired":   "Ship repaired",
	"fleet.failed":     "Fleet action failed",

	"market.title":  "Ship Market",
	"market.buy":    "Buy",
	"market.sell":   "Sell",
	"market.bought": "Ship purchased",
	"market.sold":   "Ship sold",
	"market.failed": "Trade failed",

	"work.title":    "Work",
	"work.perform":  "Perform",
	"work.cooldown": "Cooldown",
	"work.ready":    "Ready to work",
	"work.earned":   "Earned",
	"work.history":  "History",
	"work.failed":   "Work failed",

	"messages.title":    "Message Log",
	"messages.category": "Category",
	"messages.level":    "Level",
	"messages.next":     "Next Page",
	"messages.prev":     "Previous Page",

	"session.expired.title":   "Session Expired",
	"session.expired.message": "Your session has expired. Please sign in again.",

	"error.load_failed": "Could not load data",
	"error.retry":       "Retry",
}

var portuguese = map[string]string{
	"app.title": "Bellum Astrum",

	"login.title":        "Entrar",
	"login.email":        "Email",
	"login.password":     "Senha",
	"login.submit":       "Entrar",
	"login.register":     "Registrar",
	"login.nickname":     "Apelido",
	"login.failed":       "Falha no login",
	"register.failed":    "Falha no registro",
	"register.submitted": "Conta criada",

	"nav.dashboard": "Painel",
	"nav.battle":    "Batalha",
	"nav.market":    "Mercado",
	"nav.fleet":     "Frota",
	"nav.work":      "Trabalho",
	"nav.messages":  "Mensagens",
	"nav.logout":    "Sair",
	"nav.quit":      "Fechar",

	"dashboard.level":     "Nível",
	"dashboard.credits":   "Créditos",
	"dashboard.elo":       "ELO",
	"dashboard.rank":      "Patente",
	"dashboard.record":    "Histórico",
	"dashboard.formation": "Formação Padrão",

	"battle.opponents":      "Oponentes",
	"battle.start":          "Iniciar Batalha",
	"battle.victory":        "Vitória!",
	"battle.defeat":         "Derrota",
	"battle.draw":           "Empate",
	"battle.no_ships":       "Você precisa de pelo menos uma nave ativa para batalhar",
	"battle.opponent_empty": "O oponente não tem naves ativas",
	"battle.failed":         "Não foi possível iniciar a batalha",
	"battle.log_title":      "Registro de Batalha",

	"fleet.title":      "Sua Frota",
	"fleet.activate":   "Ativar",
	"fleet.deactivate": "Desativar",
	"fleet.repair":     "Reparar",
	"fleet.repaired":   "Nave reparada",
	"fleet.failed":     "Falha na ação da frota",

	"market.title":  "Mercado de Naves",
	"market.buy":    "Comprar",
	"market.sell":   "Vender",
	"market.bought": "Nave comprada",
	"market.sold":   "Nave vendida",
	"market.failed": "Falha na negociação",

	"work.title":    "Trabalho",
	"work.perform":  "Executar",
	"work.cooldown": "Recarga",
	"work.ready":    "Pronto para trabalhar",
	"work.earned":   "Ganhou",
	"work.history":  "Histórico",
	"work.failed":   "Falha no trabalho",

	"messages.title":    "Registro de Mensagens",
	"messages.category": "Categoria",
	"messages.level":    "Nível",
	"messages.next":     "Próxima Página",
	"messages.prev":     "Página Anterior",

	"session.expired.title":   "Sessão Expirada",
	"session.expired.message": "Sua sessão expirou. Por favor, entre novamente.",

	"error.load_failed": "Não foi possível carregar os dados",
	"error.retry":       "Tentar novamente",
}
