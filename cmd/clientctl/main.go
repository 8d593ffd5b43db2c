// Comando clientctl: importación masiva de clientes desde CSV contra la API.
package main

func main() {
	Execute()
}
