package generator

import "fmt"

// Registry - реестр стратегий, собираемый один раз при старте процесса и
// передаваемый по ссылке. Набор моделей закрыт на этапе компиляции.
type Registry struct {
	generators map[ModelID]Generator
	order      []ModelID
}

// NewRegistry создает реестр со всеми поддерживаемыми моделями.
func NewRegistry() *Registry {
	r := &Registry{generators: make(map[ModelID]Generator)}
	for _, g := range []Generator{
		NewMidjourney(),
		NewDalle3(),
		NewStableDiffusion(),
		NewFlux(),
	} {
		id := g.Config().ModelID
		r.generators[id] = g
		r.order = append(r.order, id)
	}
	return r
}

// Generator возвращает стратегию по идентификатору модели.
func (r *Registry) Generator(id ModelID) (Generator, error) {
	g, ok := r.generators[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, id)
	}
	return g, nil
}

// IDs возвращает идентификаторы в порядке регистрации.
func (r *Registry) IDs() []ModelID {
	ids := make([]ModelID, len(r.order))
	copy(ids, r.order)
	return ids
}

// Configs возвращает конфигурации всех моделей - для API-ответов.
func (r *Registry) Configs() []ModelConfig {
	configs := make([]ModelConfig, 0, len(r.order))
	for _, id := range r.order {
		configs = append(configs, r.generators[id].Config())
	}
	return configs
}

// ResolveModelID приводит пользовательские алиасы к каноническому
// идентификатору модели.
func ResolveModelID(name string) (ModelID, error) {
	switch name {
	case "midjourney", "mj":
		return ModelMidjourney, nil
	case "dalle3", "dalle", "dall-e":
		return ModelDalle3, nil
	case "stable-diffusion", "sd", "sdxl":
		return ModelStableDiffusion, nil
	case "flux", "flux-pro", "flux-dev":
		return ModelFlux, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownModel, name)
	}
}
