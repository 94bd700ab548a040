package handlers

import (
	"countdown/internal/app/adapters/view"
	"github.com/gin-gonic/gin"
	"html/template"
	"net/http"
)

const indexName = "index"

type indexData struct {
	Heading      string
	FinishedText string
	AnimationURL string
	State        view.State
}

func (h *Handlers) IndexHandler(c *gin.Context) {
	cfg := h.manager.Get()

	data := indexData{
		Heading:      cfg.Countdown.Heading,
		FinishedText: cfg.Countdown.FinishedText,
		State:        view.FromState(h.screen.Snapshot(), cfg.Guestbook.PreviewSize),
	}
	if data.State.Finished {
		data.AnimationURL = h.celebration.AnimationURL()
	}

	c.HTML(http.StatusOK, indexName, data)
}

func IndexTemplate() *template.Template {
	return template.Must(template.New(indexName).Parse(indexHTML))
}

const indexHTML = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Countdown</title>
<script src="https://cdnjs.cloudflare.com/ajax/libs/lottie-web/5.12.2/lottie.min.js"></script>
<style>
  body { display: flex; flex-direction: column; align-items: center; padding: 20px; margin: 0; background: #000; color: #fff; font-family: sans-serif; }
  .time { font-size: 30px; font-weight: bold; margin-bottom: 20px; }
  .finished { font-size: 20px; font-weight: bold; text-align: center; margin-bottom: 20px; }
  #fireworks { width: 200px; height: 200px; }
  input { width: 80%; padding: 10px; margin-bottom: 10px; border: 1px solid #ccc; border-radius: 5px; background: #333; color: #fff; }
  button { background: #007BFF; color: #fff; border: 0; border-radius: 5px; padding: 10px 20px; font-size: 16px; }
  ul { list-style: none; padding: 0; width: 100%; }
  li { background: #444; padding: 10px; border-radius: 5px; margin-bottom: 5px; }
  li b { color: #007BFF; }
  a.more { color: #007BFF; text-decoration: underline; cursor: pointer; }
</style>
</head>
<body>
<div id="countdown" {{if .State.Finished}}hidden{{end}}>
  <p>{{.Heading}}</p>
  <p class="time" id="time">{{.State.Countdown}}</p>
</div>
<div id="finished" {{if not .State.Finished}}hidden{{end}}>
  <p class="finished">{{.FinishedText}}</p>
  <div id="fireworks" data-src="{{.AnimationURL}}"></div>
</div>

<form id="form">
  <input name="name" placeholder="Seu nome">
  <input name="message" placeholder="Deixe uma mensagem">
  <button type="submit">Adicionar Mensagem</button>
</form>

<h3>Mensagens:</h3>
<ul id="messages">
{{range .State.Messages}}  <li><b>{{.Name}}: </b>{{.Message}}</li>
{{end}}</ul>
<a class="more" id="toggle" {{if not .State.CanToggle}}hidden{{end}}>{{if .State.ShowAll}}Ver menos{{else}}Ver mais{{end}}</a>

<script>
const $ = (id) => document.getElementById(id);

function playAnimation(src) {
  if (!src || !window.lottie) return;
  $("fireworks").innerHTML = "";
  lottie.loadAnimation({ container: $("fireworks"), renderer: "svg", loop: false, autoplay: true, path: src });
}

function render(s) {
  $("time").textContent = s.countdown;
  $("countdown").hidden = s.finished;
  $("finished").hidden = !s.finished;
  const ul = $("messages");
  ul.innerHTML = "";
  for (const m of s.messages) {
    const li = document.createElement("li");
    const b = document.createElement("b");
    b.textContent = m.name + ": ";
    li.appendChild(b);
    li.appendChild(document.createTextNode(m.message));
    ul.appendChild(li);
  }
  $("toggle").hidden = !s.can_toggle;
  $("toggle").textContent = s.show_all ? "Ver menos" : "Ver mais";
}

function connect() {
  const ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");
  ws.onmessage = (e) => {
    const env = JSON.parse(e.data);
    if (env.type === "state") render(env.data);
    if (env.type === "celebrate") {
      $("countdown").hidden = true;
      $("finished").hidden = false;
      if (env.data.sound_url) new Audio(env.data.sound_url).play().catch(() => {});
      playAnimation(env.data.animation_url);
    }
  };
  ws.onclose = () => setTimeout(connect, 2000);
}

$("form").addEventListener("submit", async (e) => {
  e.preventDefault();
  const f = e.target;
  const res = await fetch("/api/messages", {
    method: "POST",
    headers: { "Content-Type": "application/json" },
    body: JSON.stringify({ name: f.elements.namedItem("name").value, message: f.elements.namedItem("message").value }),
  });
  const body = await res.json();
  if (res.status === 201) {
    f.reset();
    render(body.state);
  } else {
    alert(body.alert || body.error);
  }
});

$("toggle").addEventListener("click", async () => {
  const res = await fetch("/api/messages/toggle", { method: "POST" });
  if (res.ok) render(await res.json());
});

playAnimation($("fireworks").dataset.src);
connect();
</script>
</body>
</html>`
