// cmd/patterns/demos.go
package main

import (
	"context"
	"fmt"

	"github.com/fornaio/gopatterns/behavioral/iterator"
	"github.com/fornaio/gopatterns/behavioral/mediator"
	"github.com/fornaio/gopatterns/behavioral/observer"
	"github.com/fornaio/gopatterns/behavioral/state"
	"github.com/fornaio/gopatterns/creational/builder"
	"github.com/fornaio/gopatterns/creational/factory"
	"github.com/fornaio/gopatterns/creational/prototype"
	"github.com/fornaio/gopatterns/creational/singleton"
	"github.com/fornaio/gopatterns/structural/facade"
	"github.com/fornaio/gopatterns/structural/proxy"
)

// demo is one runnable pattern walkthrough.
//
// run is pure: it exercises the pattern package and returns the transcript
// as lines. The TUI, the -run flag and the tests all consume the same lines,
// so there is exactly one place deciding what a demo shows.
type demo struct {
	name     string
	category string
	blurb    string
	run      func() []string
}

// demos lists every walkthrough in curriculum order: creational first, then
// structural, then behavioral.
var demos = []demo{
	{name: "builder", category: "creational", blurb: "assemble a pizza step by step", run: demoBuilder},
	{name: "singleton", category: "creational", blurb: "one shared oven for the whole shop", run: demoSingleton},
	{name: "prototype", category: "creational", blurb: "orders as clones of menu presets", run: demoPrototype},
	{name: "factory", category: "creational", blurb: "ovens by kind behind an interface", run: demoFactory},
	{name: "facade", category: "structural", blurb: "one call hides stock, payment and kitchen", run: demoFacade},
	{name: "proxy", category: "structural", blurb: "a caching stand-in for the menu source", run: demoProxy},
	{name: "iterator", category: "behavioral", blurb: "walk the order log without its internals", run: demoIterator},
	{name: "observer", category: "behavioral", blurb: "the kitchen bell and its listeners", run: demoObserver},
	{name: "mediator", category: "behavioral", blurb: "stations talking through the dispatcher", run: demoMediator},
	{name: "state", category: "behavioral", blurb: "a ticket moving through its lifecycle", run: demoState},
}

// findDemo looks a demo up by name.
func findDemo(name string) (demo, bool) {
	for _, d := range demos {
		if d.name == name {
			return d, true
		}
	}
	return demo{}, false
}

func demoBuilder() []string {
	pizza := builder.MustNew("gluten free").AddPepperoni().AddMushrooms()
	backwards := builder.MustNew("gluten free").AddMushrooms().AddPepperoni().AddPepperoni()
	_, blankErr := builder.New("   ")

	return []string{
		"order: " + pizza.String(),
		"chained backwards, same result: " + backwards.String(),
		fmt.Sprintf("toppings in menu order: %v", backwards.Toppings()),
		fmt.Sprintf("blank base: %v", blankErr),
	}
}

func demoSingleton() []string {
	same := singleton.Default() == singleton.Default()

	private := singleton.New()
	first := private.Bake("margherita")
	second := private.Bake("diavola")
	last, _ := private.Last()

	return []string{
		fmt.Sprintf("Default() from two call sites, same oven: %t", same),
		fmt.Sprintf("private oven receipts: %d then %d", first, second),
		"private oven last bake: " + last,
	}
}

func demoPrototype() []string {
	menu := prototype.NewCatalog()
	_ = menu.Register(prototype.NewPreset("margherita", "classic", "tomato", "mozzarella"))

	first, _ := menu.Get("margherita")
	first.WithTopping("basil")
	second, _ := menu.Get("margherita")
	_, unknownErr := menu.Get("hawaiian")

	return []string{
		fmt.Sprintf("menu: %v", menu.Names()),
		fmt.Sprintf("first order, customized: %v", first.Toppings),
		fmt.Sprintf("second order, untouched:  %v", second.Toppings),
		fmt.Sprintf("clones get fresh ids: %t", first.ID != second.ID),
		fmt.Sprintf("unknown preset: %v", unknownErr),
	}
}

func demoFactory() []string {
	lines := []string{fmt.Sprintf("kinds: %v", factory.Kinds())}
	for _, kind := range factory.Kinds() {
		oven, err := factory.New(kind)
		if err != nil {
			lines = append(lines, fmt.Sprintf("%s: %v", kind, err))
			continue
		}
		lines = append(lines, oven.Bake("margherita"))
	}

	_, unknownErr := factory.New("solar")
	return append(lines, fmt.Sprintf("unknown kind: %v", unknownErr))
}

func demoFacade() []string {
	stock := facade.NewStockroom(map[string]int{"margherita": 2})
	counter, err := facade.NewCounter(stock, facade.NewCardReader(2000), facade.NewLine())
	if err != nil {
		return []string{fmt.Sprintf("wire counter: %v", err)}
	}

	conf, err := counter.PlaceOrder(facade.Order{Customer: "ada", Pizza: "margherita", Cents: 900})
	if err != nil {
		return []string{fmt.Sprintf("place order: %v", err)}
	}
	lines := []string{fmt.Sprintf("ada: ticket %d, receipt %s", conf.Ticket, conf.Receipt)}

	_, declined := counter.PlaceOrder(facade.Order{Customer: "bo", Pizza: "margherita", Cents: 5000})
	lines = append(lines,
		fmt.Sprintf("bo: %v", declined),
		fmt.Sprintf("margherita portions left: %d (reservation rolled back)", stock.Portions("margherita")),
	)

	_, dry := counter.PlaceOrder(facade.Order{Customer: "cyn", Pizza: "hawaiian", Cents: 900})
	return append(lines, fmt.Sprintf("cyn: %v", dry))
}

func demoProxy() []string {
	doc := []byte(`{"updated":"2024-05-01","items":[` +
		`{"name":"margherita","base":"classic","cents":900},` +
		`{"name":"gluten free special","base":"gluten free","cents":1200}]}`)

	src, err := proxy.NewJSONSource(doc)
	if err != nil {
		return []string{fmt.Sprintf("source: %v", err)}
	}
	cache, err := proxy.NewCachingProxy(src)
	if err != nil {
		return []string{fmt.Sprintf("proxy: %v", err)}
	}

	var lines []string
	for i := 1; i <= 3; i++ {
		menu, err := cache.Fetch(context.Background())
		if err != nil {
			return append(lines, fmt.Sprintf("fetch: %v", err))
		}
		lines = append(lines, fmt.Sprintf("fetch %d: %d items (updated %s)", i, len(menu.Items), menu.Updated))
	}
	return append(lines, fmt.Sprintf("upstream fetches: %d", cache.Upstream()))
}

func demoIterator() []string {
	log := iterator.NewOrderLog()
	log.Take("ada", "margherita")
	log.Take("bo", "gluten free special")

	snapshot := log.Orders()
	log.Take("cyn", "diavola") // after the snapshot

	var lines []string
	_ = iterator.Each(snapshot, func(o iterator.Order) error {
		lines = append(lines, fmt.Sprintf("ticket %d: %s for %s", o.Ticket, o.Pizza, o.Customer))
		return nil
	})
	return append(lines, fmt.Sprintf("snapshot saw 2 orders, the log now holds %d", log.Len()))
}

func demoObserver() []string {
	var lines []string

	bell := observer.NewBell()
	_, _ = bell.Subscribe(observer.ObserverFunc(func(e observer.Event) {
		lines = append(lines, fmt.Sprintf("counter hears: %s is %s", e.Order, e.Status))
	}))
	deskToken, _ := bell.Subscribe(observer.ObserverFunc(func(e observer.Event) {
		lines = append(lines, fmt.Sprintf("delivery hears: %s", e.Order))
	}))

	bell.Ring(observer.Event{Order: "margherita", Status: "ready"})
	bell.Unsubscribe(deskToken)
	bell.Ring(observer.Event{Order: "diavola", Status: "ready"})

	return append(lines, fmt.Sprintf("subscribers left: %d", bell.Subscribers()))
}

func demoMediator() []string {
	shop := mediator.NewDispatcher()
	counter := mediator.NewPost("counter")
	kitchen := mediator.NewPost("kitchen")
	delivery := mediator.NewPost("delivery")
	for _, s := range []mediator.Station{counter, kitchen, delivery} {
		_ = shop.Register(s)
	}

	_ = shop.Send("counter", "kitchen", "one diavola")
	_ = shop.Broadcast("kitchen", "oven is hot")

	lines := []string{
		fmt.Sprintf("stations: %v", shop.Stations()),
		fmt.Sprintf("kitchen heard: %v", kitchen.Heard()),
		fmt.Sprintf("delivery heard: %v", delivery.Heard()),
	}

	err := shop.Send("counter", "basement", "hello?")
	return append(lines, fmt.Sprintf("note to nowhere: %v", err))
}

func demoState() []string {
	ticket := state.NewTicket("margherita")

	lines := []string{ticket.String()}
	for !ticket.Closed() {
		if err := ticket.Advance(); err != nil {
			return append(lines, fmt.Sprintf("advance: %v", err))
		}
		lines = append(lines, ticket.String())
	}

	late := state.NewTicket("diavola")
	for late.Status() != state.StatusDelivering {
		if err := late.Advance(); err != nil {
			return append(lines, fmt.Sprintf("advance: %v", err))
		}
	}
	err := late.Cancel()
	return append(lines, fmt.Sprintf("cancel while delivering: %v", err))
}
