package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// landingHTML is the marketing landing page, served at the root path.
const landingHTML = `<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>RentCar — Renta de Vehículos</title>
  <style>
    body { font-family: system-ui, sans-serif; margin: 0; color: #1f2937; }
    header { background: #312e81; color: #fff; padding: 4rem 2rem; text-align: center; }
    header h1 { font-size: 2.5rem; margin: 0 0 .5rem; }
    header p { color: #c7d2fe; margin: 0; }
    section { max-width: 960px; margin: 0 auto; padding: 3rem 2rem; }
    .features { display: flex; gap: 2rem; flex-wrap: wrap; }
    .feature { flex: 1 1 240px; background: #f9fafb; border-radius: 12px; padding: 1.5rem; }
    .feature h3 { margin-top: 0; }
    footer { background: #111827; color: #9ca3af; text-align: center; padding: 1.5rem; }
  </style>
</head>
<body>
  <header>
    <h1>RentCar</h1>
    <p>Renta de vehículos confiable, rápida y al mejor precio</p>
  </header>
  <section>
    <div class="features">
      <div class="feature">
        <h3>Flota variada</h3>
        <p>Automóviles, camionetas, SUVs y pickups de las mejores marcas.</p>
      </div>
      <div class="feature">
        <h3>Proceso simple</h3>
        <p>Reserva, inspección y entrega gestionadas por nuestro equipo.</p>
      </div>
      <div class="feature">
        <h3>Soporte dedicado</h3>
        <p>Acompañamiento durante toda la renta, devolución sin complicaciones.</p>
      </div>
    </div>
  </section>
  <footer>RentCar &copy; Todos los derechos reservados</footer>
</body>
</html>
`

// Landing serves the marketing landing page
func Landing(c echo.Context) error {
	return c.HTML(http.StatusOK, landingHTML)
}
