package techstack

var languageByExt = map[string]string{
	".html": "HTML", ".htm": "HTML",
	".css": "CSS", ".scss": "CSS", ".sass": "CSS", ".less": "CSS",
	".js": "JavaScript", ".jsx": "JavaScript",
	".ts": "TypeScript", ".tsx": "TypeScript",
	".py":   "Python",
	".java": "Java", ".class": "Java",
	".php": "PHP",
	".rb":  "Ruby",
	".go":  "Go",
	".rs":  "Rust",
	".cs":  "C#",
	".cpp": "C++", ".cc": "C++", ".cxx": "C++",
	".c":     "C",
	".swift": "Swift",
	".kt":    "Kotlin",
	".scala": "Scala",
}

// textExts are the files content signals are searched in.
var textExts = []string{".py", ".js", ".ts", ".jsx", ".tsx", ".json", ".md", ".txt", ".html", ".css"}

func dep(keys ...string) []Signal {
	signals := make([]Signal, 0, len(keys))
	for _, k := range keys {
		signals = append(signals, Signal{Dependency: k})
	}
	return signals
}

func req(subs ...string) []Signal {
	signals := make([]Signal, 0, len(subs))
	for _, s := range subs {
		signals = append(signals, Signal{Requirement: s})
	}
	return signals
}

func file(names ...string) []Signal {
	signals := make([]Signal, 0, len(names))
	for _, n := range names {
		signals = append(signals, Signal{File: n})
	}
	return signals
}

func content(subs ...string) []Signal {
	signals := make([]Signal, 0, len(subs))
	for _, s := range subs {
		signals = append(signals, Signal{Content: s})
	}
	return signals
}

func join(groups ...[]Signal) []Signal {
	var out []Signal
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

var frameworkRules = []Rule{
	{"React", dep("react")},
	{"Vue.js", join(dep("vue"), file("vue.config.js"))},
	{"Angular", join(dep("@angular/core"), file("angular.json"))},
	{"Next.js", join(dep("next"), file("next.config.js"))},
	{"Nuxt.js", join(dep("nuxt"), file("nuxt.config.js"))},
	{"Gatsby", dep("gatsby")},
	{"Express.js", dep("express")},
	{"Koa", dep("koa")},
	{"Fastify", dep("fastify")},
	{"NestJS", dep("nest")},
	{"Bootstrap", dep("bootstrap")},
	{"Tailwind CSS", dep("tailwindcss")},
	{"Material-UI", dep("material-ui", "@mui/material")},
	{"Ant Design", dep("antd")},
	{"Chakra UI", dep("chakra-ui")},
	{"Redux", dep("redux")},
	{"MobX", dep("mobx")},
	{"Zustand", dep("zustand")},
	{"Django", join(req("django"), file("manage.py"))},
	{"Flask", join(req("flask"), []Signal{{File: "app.py", Content: "flask"}})},
	{"FastAPI", req("fastapi")},
	{"Tornado", req("tornado")},
	{"Pyramid", req("pyramid")},
}

var frontendRules = []Rule{
	{"Bootstrap", content("bootstrap")},
	{"Tailwind CSS", content("tailwind")},
	{"Material-UI", content("material-ui", "@mui")},
	{"jQuery", content("jquery")},
	{"Lodash", content("lodash")},
	{"Moment.js", content("moment")},
	{"Webpack", file("webpack.config.js")},
	{"Vite", file("vite.config.js")},
	{"Rollup", file("rollup.config.js")},
}

var backendRules = []Rule{
	{"Express.js", []Signal{{File: "package.json", Content: "express"}}},
	{"Flask", []Signal{{File: "requirements.txt", Content: "flask"}}},
	{"Django", []Signal{{File: "requirements.txt", Content: "django"}}},
	{"FastAPI", content("fastapi")},
	{"GraphQL", content("graphql")},
}

var databaseRules = []Rule{
	{"MongoDB", dep("mongoose", "mongodb")},
	{"MySQL", join(dep("mysql", "mysql2"), req("mysql-connector", "pymysql"))},
	{"PostgreSQL", join(dep("pg", "postgres"), req("psycopg2", "postgresql"))},
	{"SQLite", join(dep("sqlite3"), req("sqlite"))},
	{"Redis", join(dep("redis"), req("redis"))},
	{"Elasticsearch", req("elasticsearch")},
}

var buildToolRules = []Rule{
	{"Webpack", file("webpack.config.js")},
	{"Vite", file("vite.config.js")},
	{"Rollup", file("rollup.config.js")},
	{"Gulp", file("gulpfile.js")},
	{"Grunt", file("gruntfile.js")},
	{"npm scripts", []Signal{{File: "package.json", Content: `"scripts"`}}},
}

var deploymentRules = []Rule{
	{"Docker", file("dockerfile")},
	{"Docker Compose", file("docker-compose.yml")},
	{"GitHub Actions", []Signal{{RootPath: ".github/workflows"}}},
	{"GitLab CI", file(".gitlab-ci.yml")},
	{"Vercel", file("vercel.json")},
	{"Netlify", file("netlify.toml")},
	{"Heroku", file("heroku")},
}

var versionControlRules = []Rule{
	{"Git", []Signal{{RootPath: ".git"}}},
	{"SVN", []Signal{{RootPath: ".svn"}}},
	{"Mercurial", []Signal{{RootPath: ".hg"}}},
}

var toolRules = []Rule{
	{"Jest", join(file("jest.config.js"), content("jest"))},
	{"Cypress", file("cypress")},
	{"pytest", content("pytest")},
	{"unittest", content("unittest")},
	{"ESLint", file(".eslintrc")},
	{"Prettier", file(".prettierrc")},
	{"Python Linters", file("flake8", "pylint")},
	{"TypeScript", file("tsconfig.json")},
	{"MyPy", content("mypy")},
}
